package ui

import (
	"magicchat/model"
)

// Message type aliases - these are defined in the model package
type exchangeDoneMsg = model.ExchangeDoneMsg
type exchangeErrorMsg = model.ExchangeErrorMsg
type endpointStatusMsg = model.EndpointStatusMsg
type markdownRenderedMsg = model.MarkdownRenderedMsg
type clipboardCopiedMsg = model.ClipboardCopiedMsg

// clearStatusMsg expires a status bar notice. seq ties it to the notice that
// scheduled it so an older timer cannot clear a newer notice.
type clearStatusMsg struct {
	seq int
}
