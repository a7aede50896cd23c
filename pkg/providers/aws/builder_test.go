package aws

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateSharedConfig(t *testing.T) {
	dir := t.TempDir()

	configFile := filepath.Join(dir, "config")
	require.NoError(t, os.WriteFile(configFile, []byte("[profile shotty]\nregion = eu-west-1\n"), 0o600))

	credentialsFile := filepath.Join(dir, "credentials")
	require.NoError(t, os.WriteFile(credentialsFile, []byte("[shotty]\naws_access_key_id = AKIDTEST\naws_secret_access_key = secret\n"), 0o600))

	t.Setenv("AWS_CONFIG_FILE", configFile)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", credentialsFile)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
}

func TestNewProvider_Profile(t *testing.T) {
	isolateSharedConfig(t)

	p, err := NewProvider(context.Background(), WithProfile("shotty"))
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", p.GetConfig().Region)
	assert.NotNil(t, p.GetEC2Client())
}

func TestNewProvider_RegionOverridesProfile(t *testing.T) {
	isolateSharedConfig(t)

	p, err := NewProvider(context.Background(),
		WithProfile("shotty"),
		WithRegion("ap-south-1"),
	)
	require.NoError(t, err)

	assert.Equal(t, "ap-south-1", p.GetConfig().Region)
}

func TestNewProvider_UnknownProfile(t *testing.T) {
	isolateSharedConfig(t)

	_, err := NewProvider(context.Background(), WithProfile("missing"))
	assert.Error(t, err)
}

func TestNewProvider_EC2Endpoint(t *testing.T) {
	isolateSharedConfig(t)

	p, err := NewProvider(context.Background(),
		WithProfile("shotty"),
		WithEC2Endpoint("http://localhost:4566"),
	)
	require.NoError(t, err)

	endpoint, err := p.GetConfig().EndpointResolver.ResolveEndpoint("EC2", "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566", endpoint.URL)
	assert.Equal(t, "eu-west-1", endpoint.SigningRegion)

	_, err = p.GetConfig().EndpointResolver.ResolveEndpoint("S3", "eu-west-1")
	assert.Error(t, err)
}
