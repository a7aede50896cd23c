package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/ultraviolet-black/shotty/pkg/observability"
)

type ProviderOption func(*awsProvider)

// WithProfile selects a named profile from the shared config and
// credentials files. Empty keeps the SDK default chain.
func WithProfile(profile string) ProviderOption {
	return func(p *awsProvider) {
		p.profile = profile
	}
}

func WithRegion(region string) ProviderOption {
	return func(p *awsProvider) {
		p.region = region
	}
}

// WithEC2Endpoint overrides the EC2 endpoint, e.g. for LocalStack.
func WithEC2Endpoint(endpoint string) ProviderOption {
	return func(p *awsProvider) {
		p.ec2Endpoint = endpoint
	}
}

type Provider interface {
	GetConfig() aws.Config
	GetEC2Client() *awsec2.Client
}

func NewProvider(ctx context.Context, opts ...ProviderOption) (Provider, error) {

	p := &awsProvider{}

	for _, opt := range opts {
		opt(p)
	}

	customResolver := aws.EndpointResolverFunc(func(service, region string) (aws.Endpoint, error) {
		if len(p.ec2Endpoint) > 0 && service == awsec2.ServiceID {
			signingRegion := region
			if len(signingRegion) == 0 {
				signingRegion = defaultSigningRegion
			}
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           p.ec2Endpoint,
				SigningRegion: signingRegion,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})

	cfgOpts := []func(*config.LoadOptions) error{
		config.WithEndpointResolver(customResolver),
	}

	if len(p.profile) > 0 {
		cfgOpts = append(cfgOpts, config.WithSharedConfigProfile(p.profile))
	}

	if len(p.region) > 0 {
		cfgOpts = append(cfgOpts, config.WithRegion(p.region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	observability.Log.Debugw("aws config loaded",
		"profile", p.profile,
		"region", cfg.Region,
		"ec2_endpoint", p.ec2Endpoint,
	)

	p.config = cfg
	p.ec2Client = awsec2.NewFromConfig(cfg)

	return p, nil

}
