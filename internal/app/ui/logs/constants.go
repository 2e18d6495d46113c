package logs

const (
	searchPrompt      = "/ "
	searchPlaceholder = "search messages"
	searchCharLimit   = 256

	placeholderText = "Something went wrong loading the log"
	emptyText       = "No records match the current filters"

	uiComponent = "UI"
)
