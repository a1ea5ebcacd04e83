package model

// ExchangeDoneMsg and ExchangeErrorMsg carry the generation the exchange was
// started in. ID only ties log lines together.
type ExchangeDoneMsg struct {
	ID         string
	Reply      string
	Generation uint64
}

type ExchangeErrorMsg struct {
	ID         string
	Err        error
	Generation uint64
}

type EndpointStatusMsg struct {
	Err error
}

type MarkdownRenderedMsg struct {
	Generation   uint64
	MessageIndex int
	Rendered     string
}

type ClipboardCopiedMsg struct {
	What string
	Err  error
}
