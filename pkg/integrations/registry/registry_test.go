package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"droscher.com/BeanJournal/configs"
	"droscher.com/BeanJournal/pkg/integrations/perplexity"
	"droscher.com/BeanJournal/pkg/integrations/registry"
)

func TestGetIntegration(t *testing.T) {
	enricher, err := registry.GetIntegration(perplexity.IntegrationName, configs.Integrations{}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.IsType(t, &perplexity.Client{}, enricher)

	enricher, err = registry.GetIntegration("openai", configs.Integrations{}, zaptest.NewLogger(t))
	require.ErrorIs(t, err, configs.ErrConfiguration)
	assert.Nil(t, enricher)
}
