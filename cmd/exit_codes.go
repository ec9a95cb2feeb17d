package cmd

const (
	// Success is the same as EXIT_SUCCESS in C
	Success = iota

	// BadArgs passed to cli; not our fault.
	BadArgs

	// BadPath means the given path did not parse or resolve.
	BadPath

	// BadFile means the tree file could not be read, parsed or written.
	BadFile

	// UnknownError is an uncategorized error, probably our fault.
	UnknownError
)
