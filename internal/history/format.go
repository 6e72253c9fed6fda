package history

// Element and attribute names of the persisted history format.
const (
	// rootElement is the document root of a history file.
	rootElement = "history"

	// commandElement holds one executed command as character data.
	commandElement = "command"

	// versionAttribute is the root attribute naming the producer that wrote
	// the file. Older files predate it, so it is optional on read.
	versionAttribute = "version"
)
