// Package notify provides notification services for deployment events.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Notification event with type, message, and metadata
//   - EventType: Type of event (run started, procedure deployed, etc.)
//
// Implementations:
//   - SlackNotifier: Sends notifications to Slack webhooks
//   - WebhookNotifier: Sends notifications to generic webhooks
//   - LogNotifier: Logs notifications (for testing/debugging)
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier (for testing)
//
// Notifiers are usually built from the optional notify section of
// .sprocketship.yml via FromTree:
//
//	notify:
//	  slack:
//	    webhook_url: https://hooks.slack.com/services/...
//	    channel: "#deploys"
//
// Example usage:
//
//	notifier, err := notify.FromTree(tree)
//	err = notifier.Notify(ctx, notify.Event{
//	    Type:    notify.EventRunCompleted,
//	    Message: "All procedures deployed",
//	})
package notify
