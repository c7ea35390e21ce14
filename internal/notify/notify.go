package notify

import (
	"github.com/nicholas-fedor/shoutrrr"
	"github.com/nicholas-fedor/shoutrrr/pkg/router"
	"github.com/nicholas-fedor/shoutrrr/pkg/types"
	"github.com/rs/zerolog"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier is the fire-and-forget user notification sink. Implementations
// must not block the caller on delivery and never return an error to it.
type Notifier interface {
	Notify(title, body string, severity Severity)
}

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(title, body string, severity Severity) {
	event := n.log.Info()
	if severity == SeverityError {
		event = n.log.Error()
	}
	event.Str("title", title).Str("severity", string(severity)).Msg(body)
}

// PushNotifier forwards notifications to external services (telegram,
// slack, ...) through shoutrrr URLs.
type PushNotifier struct {
	sender *router.ServiceRouter
	log    zerolog.Logger
}

func NewPushNotifier(urls []string, log zerolog.Logger) (*PushNotifier, error) {
	sender, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		return nil, err
	}
	return &PushNotifier{sender: sender, log: log}, nil
}

func (n *PushNotifier) Notify(title, body string, severity Severity) {
	go func() {
		params := types.Params{"title": title}
		for _, err := range n.sender.Send(body, &params) {
			if err != nil {
				n.log.Warn().Err(err).Msg("push notification failed")
			}
		}
	}()
}

type MultiNotifier struct {
	sinks []Notifier
}

func NewMultiNotifier(sinks ...Notifier) *MultiNotifier {
	return &MultiNotifier{sinks: sinks}
}

func (n *MultiNotifier) Notify(title, body string, severity Severity) {
	for _, sink := range n.sinks {
		sink.Notify(title, body, severity)
	}
}
