package apierrors

// Message keys resolved through pkg/translator. The translated text is a
// compatibility surface for API clients; change translations, not keys.
const (
	MsgInvalidRequestBody = "invalidRequestBody"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgAssignedToNotArray = "assignedToNotArray"

	MsgTaskNotFound       = "taskNotFound"
	MsgUserNotFound       = "userNotFound"
	MsgUserAlreadyExists  = "userAlreadyExists"
	MsgInvalidCredentials = "invalidCredentials"
	MsgNotAuthenticated   = "notAuthenticated"
	MsgAccessDenied       = "accessDenied"
	MsgNotAuthorizedTask  = "notAuthorizedTask"
	MsgNoFileUploaded     = "noFileUploaded"
	MsgInvalidFileType    = "invalidFileType"

	MsgFailRegister      = "failRegister"
	MsgFailLogin         = "failLogin"
	MsgFailProfile       = "failProfile"
	MsgFailUpdateProfile = "failUpdateProfile"
	MsgFailUpload        = "failUpload"
	MsgFailListUsers     = "failListUsers"
	MsgFailFindUser      = "failFindUser"
	MsgFailListTask      = "failListTask"
	MsgFailFindTask      = "failFindTask"
	MsgFailCreateTask    = "failCreateTask"
	MsgFailUpdateTask    = "failUpdateTask"
	MsgFailDeleteTask    = "failDeleteTask"
	MsgFailDashboard     = "failDashboard"
	MsgFailExportReport  = "failExportReport"
	MsgInternalError     = "internalError"
)
