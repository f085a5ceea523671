package templates

const (
	appNameKey = "core.app_name"

	composePlaceholderKey = "tasks.compose.placeholder"
	composeSubmitKey      = "tasks.compose.submit"
	filterLabelKey        = "tasks.filter.label"
	filterApplyKey        = "tasks.filter.apply"
	filterOptionKeyPrefix = "tasks.filter."
	rowToggleKey          = "tasks.row.toggle"
	rowEditKey            = "tasks.row.edit"
	rowDeleteKey          = "tasks.row.delete"
	rowSaveKey            = "tasks.row.save"
	rowCancelKey          = "tasks.row.cancel"
	rowDraftLabelKey      = "tasks.row.draft_label"
	emptyTitleKey         = "tasks.empty.title"
	emptyBodyKey          = "tasks.empty.body"
	summaryKey            = "tasks.summary"
)
