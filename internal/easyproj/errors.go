package easyproj

import "errors"

// Sentinel errors for easy project parsing.
var (
	// ErrInvalidArchive indicates the input is not a readable ZIP archive.
	ErrInvalidArchive = errors.New("invalid project archive")

	// ErrMissingChannels indicates the archive has no configuration/Channels.xml.
	ErrMissingChannels = errors.New("channels document not found in archive")

	// ErrInvalidDocument indicates a document whose structure cannot be interpreted.
	ErrInvalidDocument = errors.New("invalid channels document")

	// ErrNoChannels indicates the channels document defines no channels.
	ErrNoChannels = errors.New("no channels found in project")

	// ErrInvalidAddress indicates a group address outside the 16-bit range.
	ErrInvalidAddress = errors.New("invalid group address")

	// ErrFileTooLarge indicates the input exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size limit")
)
