package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"magicchat/config"
)

// SendExchange runs one exchange off the UI goroutine. It works on the
// history snapshot it is given, never on the live conversation, and tags the
// result with generation so stale results can be dropped.
func (m *Model) SendExchange(text string, history []Message, generation uint64) tea.Cmd {
	exchanger := m.Exchanger

	return func() tea.Msg {
		id := uuid.NewString()
		if config.DebugLog != nil {
			config.DebugLog.WithFields(logrus.Fields{
				"exchange":   id,
				"generation": generation,
				"history":    len(history),
			}).Debug("[Model] exchange started")
		}

		startTime := time.Now()
		reply, err := exchanger.Exchange(context.Background(), text, history)
		elapsed := time.Since(startTime)

		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.WithField("exchange", id).Errorf("[Model] exchange failed after %v: %v", elapsed, err)
			}
			return ExchangeErrorMsg{ID: id, Err: err, Generation: generation}
		}

		if config.DebugLog != nil {
			config.DebugLog.WithField("exchange", id).Debugf("[Model] exchange completed in %v (%d chars)", elapsed, len(reply))
		}
		return ExchangeDoneMsg{ID: id, Reply: reply, Generation: generation}
	}
}

// PingEndpoint checks reachability in the background for the header badge.
func (m *Model) PingEndpoint() tea.Cmd {
	exchanger := m.Exchanger

	return func() tea.Msg {
		err := exchanger.Ping(context.Background())
		if err != nil && config.DebugLog != nil {
			config.DebugLog.Warnf("[Model] endpoint %s unreachable: %v", exchanger.Endpoint(), err)
		}
		return EndpointStatusMsg{Err: err}
	}
}

func (m *Model) HandleEndpointStatus(msg EndpointStatusMsg) {
	m.EndpointReachable = msg.Err == nil
}
