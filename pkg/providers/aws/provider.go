package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
)

const defaultSigningRegion = "us-east-1"

type awsProvider struct {
	config aws.Config

	ec2Client *awsec2.Client

	profile     string
	region      string
	ec2Endpoint string
}

func (p *awsProvider) GetConfig() aws.Config {
	return p.config
}

func (p *awsProvider) GetEC2Client() *awsec2.Client {
	return p.ec2Client
}
