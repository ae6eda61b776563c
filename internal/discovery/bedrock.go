package discovery

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrock"
	"github.com/aws/aws-sdk-go-v2/service/bedrock/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/driftlabs/model-resolver-api/internal/core/services"
	"github.com/driftlabs/model-resolver-api/pkg/schema"
)

const (
	// ProviderKey is the registry key discovered models are published under.
	ProviderKey = "bedrock"

	defaultRegion          = "us-east-1"
	defaultRefreshInterval = 15 * time.Minute
	defaultContextWindow   = 128000
	defaultMaxTokens       = 4096
)

// ModelLister is the slice of the Bedrock control-plane API the service
// needs. Satisfied by *bedrock.Client.
type ModelLister interface {
	ListFoundationModels(ctx context.Context, params *bedrock.ListFoundationModelsInput, optFns ...func(*bedrock.Options)) (*bedrock.ListFoundationModelsOutput, error)
}

// Service discovers foundation models available in an AWS region and maps
// them into a provider configuration the registry can merge.
type Service struct {
	client ModelLister
	cfg    schema.BedrockDiscovery
	logger *zap.Logger
}

// New builds a Service backed by a real Bedrock client using the default
// AWS credential chain.
func New(ctx context.Context, cfg schema.BedrockDiscovery, logger *zap.Logger) (*Service, error) {
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return NewWithClient(bedrock.NewFromConfig(awsCfg), cfg, logger), nil
}

// NewWithClient injects the API client directly.
func NewWithClient(client ModelLister, cfg schema.BedrockDiscovery, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Region == "" {
		cfg.Region = defaultRegion
	}
	return &Service{client: client, cfg: cfg, logger: logger}
}

// Providers fetches the region's foundation models and returns them as a
// single provider entry. Models matching no providerFilter entry are
// dropped; capability metadata the listing does not carry falls back to the
// configured defaults.
func (s *Service) Providers(ctx context.Context) (map[string]schema.ProviderConfig, error) {
	out, err := s.client.ListFoundationModels(ctx, &bedrock.ListFoundationModelsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list foundation models: %w", err)
	}

	contextWindow := s.cfg.DefaultContextWindow
	if contextWindow <= 0 {
		contextWindow = defaultContextWindow
	}
	maxTokens := s.cfg.DefaultMaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	var models []schema.ModelDefinition
	for _, summary := range out.ModelSummaries {
		if !s.matchesFilter(aws.ToString(summary.ProviderName)) {
			continue
		}
		models = append(models, schema.ModelDefinition{
			ID:            aws.ToString(summary.ModelId),
			Name:          aws.ToString(summary.ModelName),
			Input:         inputModalities(summary.InputModalities),
			ContextWindow: contextWindow,
			MaxTokens:     maxTokens,
		})
	}

	s.logger.Info("Bedrock discovery complete",
		zap.String("region", s.cfg.Region),
		zap.Int("models", len(models)),
	)

	return map[string]schema.ProviderConfig{
		ProviderKey: {
			BaseURL: fmt.Sprintf("https://bedrock-runtime.%s.amazonaws.com", s.cfg.Region),
			Auth:    schema.AuthAWSSDK,
			API:     schema.DialectBedrockConverse,
			Models:  models,
		},
	}, nil
}

func (s *Service) matchesFilter(providerName string) bool {
	if len(s.cfg.ProviderFilter) == 0 {
		return true
	}
	for _, want := range s.cfg.ProviderFilter {
		if strings.EqualFold(strings.TrimSpace(want), providerName) {
			return true
		}
	}
	return false
}

func inputModalities(in []types.ModelModality) []schema.Modality {
	var out []schema.Modality
	for _, m := range in {
		switch m {
		case types.ModelModalityText:
			out = append(out, schema.ModalityText)
		case types.ModelModalityImage:
			out = append(out, schema.ModalityImage)
		}
	}
	if out == nil {
		out = []schema.Modality{schema.ModalityText}
	}
	return out
}

// Run refreshes discovery on the configured interval and publishes each
// result into the registry as a fresh atomic snapshot. An initial refresh
// happens immediately; later failures keep the previous snapshot in place.
// Run blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context, cfg schema.ModelsConfig, registry *services.Registry) {
	interval := s.cfg.RefreshInterval
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	s.refresh(ctx, cfg, registry)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx, cfg, registry)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) refresh(ctx context.Context, cfg schema.ModelsConfig, registry *services.Registry) {
	discovered, err := s.Providers(ctx)
	if err != nil {
		s.logger.Warn("Bedrock discovery refresh failed, keeping previous snapshot", zap.Error(err))
		return
	}

	registry.Publish(cfg, discovered)

	if s.cfg.SnapshotPath != "" {
		if err := writeSnapshot(s.cfg.SnapshotPath, discovered); err != nil {
			s.logger.Warn("Failed to write discovery snapshot", zap.String("path", s.cfg.SnapshotPath), zap.Error(err))
		}
	}
}

// writeSnapshot exports the discovered providers to a YAML file so the last
// known catalog survives restarts and is inspectable.
func writeSnapshot(path string, providers map[string]schema.ProviderConfig) error {
	wrapper := struct {
		Providers map[string]schema.ProviderConfig `yaml:"providers"`
	}{
		Providers: providers,
	}
	data, err := yaml.Marshal(wrapper)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
