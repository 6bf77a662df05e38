package domain

// ModelReply is the text a generative model produced for one request,
// along with the shape of the raw reply.
type ModelReply struct {
	Text        string
	Diagnostics ModelDiagnostics
}
