package messages

// Key identifies a user-facing message
type Key string

const (
	DryRunMode               Key = "dry_run_mode"
	AlreadyEstablished       Key = "wifi_already_established_template"
	ResetAnyway              Key = "reset_anyway"
	UserExitRequested        Key = "user_exit_requested"
	NoWifiEstablished        Key = "no_wifi_established"
	Established              Key = "wifi_established_template"
	CantEstablish            Key = "cant_establish_template"
	NoteInstantDisconnection Key = "note_instant_disconnection"
	RestartFailure           Key = "restart_failure"
	IgnoredFailure           Key = "ignored_failure"
	AttemptsReport           Key = "attempts_report_template"
	FlagNote                 Key = "flag_note_template"
	ErrorValueNaN            Key = "error_value_nan"
	ErrorValueInf            Key = "error_value_inf"
	ErrorValueNegative       Key = "error_value_negative"
	ErrorValueInvalid        Key = "error_value_invalid"
	ErrorValueTooLarge       Key = "error_value_too_large"
)

// Keys lists every message a catalog must provide
var Keys = []Key{
	DryRunMode,
	AlreadyEstablished,
	ResetAnyway,
	UserExitRequested,
	NoWifiEstablished,
	Established,
	CantEstablish,
	NoteInstantDisconnection,
	RestartFailure,
	IgnoredFailure,
	AttemptsReport,
	FlagNote,
	ErrorValueNaN,
	ErrorValueInf,
	ErrorValueNegative,
	ErrorValueInvalid,
	ErrorValueTooLarge,
}
