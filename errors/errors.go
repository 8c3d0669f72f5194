package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrChannelNotFound  = fmt.Errorf("channel not found")
	ErrEmptyRoster      = fmt.Errorf("channel has no human members")
	ErrNoMemoryChannel  = fmt.Errorf("PRIVATE_CHANNEL_NAME_FOR_MEMORY is required when pairs are private")
	ErrNoTestingChannel = fmt.Errorf("CHANNEL_NAME_TESTING is required in testing mode")
)
