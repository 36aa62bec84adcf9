package errors

// User-facing messages. Technical details stay in the logs.
const (
	MsgSearchFailed       = "Server error while fetching flight data"
	MsgTrackingFailed     = "Server error while tracking flight"
	MsgAudioFailed        = "Unable to generate pronunciation audio right now."
	MsgServiceUnavailable = "The service is temporarily unavailable. Please try again later."
	MsgInternalError      = "Something went wrong. Please try again later."
)
