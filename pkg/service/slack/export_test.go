package slack

// FormatMessage is exported for testing
var FormatMessage = formatMessage
