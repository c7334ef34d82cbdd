package headwall

// AnnotateBotSignals echoes the edge proxy's bot-scoring headers onto the
// response: CF-Bot-Score becomes X-Bot-Score and CF-Verified-Bot becomes
// X-Verified-Bot. No detection happens here — absent inbound headers are
// silently omitted, and values pass through verbatim.
func AnnotateBotSignals(req RequestHeaders, resp ResponseHeaders) {
	if score := req.Get(HeaderCFBotScore); score != "" {
		resp.Set(HeaderBotScore, score)
	}
	if verified := req.Get(HeaderCFVerifiedBot); verified != "" {
		resp.Set(HeaderVerifiedBot, verified)
	}
}
