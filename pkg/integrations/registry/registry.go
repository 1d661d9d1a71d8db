package registry

import (
	"fmt"

	"go.uber.org/zap"

	"droscher.com/BeanJournal/configs"
	"droscher.com/BeanJournal/pkg/integrations"
	"droscher.com/BeanJournal/pkg/integrations/perplexity"
)

// GetIntegration returns the enricher configured under name.
func GetIntegration(name string, conf configs.Integrations, logger *zap.Logger) (integrations.Enricher, error) {
	if name == perplexity.IntegrationName {
		return perplexity.NewClient(conf.Perplexity, logger), nil
	}

	return nil, fmt.Errorf("%w: unknown enrichment integration %q", configs.ErrConfiguration, name)
}
