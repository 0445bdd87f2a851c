package notify

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/sprocketship/sprocketship/config"
)

// =============================================================================
// Settings
// =============================================================================

// Settings holds the optional notify section of .sprocketship.yml.
type Settings struct {
	Slack *SlackSettings `yaml:"slack"`

	Webhook *WebhookSettings `yaml:"webhook"`

	// Log enables logging every event through slog.
	Log bool `yaml:"log"`
}

// SlackSettings configures the Slack notifier.
type SlackSettings struct {
	WebhookURL string `yaml:"webhook_url"`
	Channel    string `yaml:"channel"`
	Username   string `yaml:"username"`
}

// WebhookSettings configures the generic webhook notifier.
type WebhookSettings struct {
	URL     string            `yaml:"url"`
	Headers map[string]string `yaml:"headers"`
}

// FromTree builds a Notifier from the notify section of the configuration
// tree. An absent or empty section yields a NopNotifier.
func FromTree(tree config.Tree) (Notifier, error) {
	section := tree.Section("notify")
	if section == nil {
		return NopNotifier{}, nil
	}

	raw, err := yaml.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("encode notify section: %w", err)
	}
	var settings Settings
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode notify section: %w", err)
	}

	return settings.Build(), nil
}

// Build constructs the notifier described by the settings.
func (s *Settings) Build() Notifier {
	var notifiers []Notifier

	if s.Slack != nil && s.Slack.WebhookURL != "" {
		var opts []SlackOption
		if s.Slack.Channel != "" {
			opts = append(opts, WithSlackChannel(s.Slack.Channel))
		}
		if s.Slack.Username != "" {
			opts = append(opts, WithSlackUsername(s.Slack.Username))
		}
		notifiers = append(notifiers, NewSlackNotifier(s.Slack.WebhookURL, opts...))
	}

	if s.Webhook != nil && s.Webhook.URL != "" {
		notifiers = append(notifiers, NewWebhookNotifier(s.Webhook.URL, s.Webhook.Headers))
	}

	if s.Log {
		notifiers = append(notifiers, NewLogNotifier(slog.Default()))
	}

	switch len(notifiers) {
	case 0:
		return NopNotifier{}
	case 1:
		return notifiers[0]
	default:
		return NewMultiNotifier(notifiers...)
	}
}
