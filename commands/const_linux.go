package commands

const (
	_etc = "/etc/uhppoted"
	_var = "/var/uhppoted"

	DEFAULT_WORKDIR     = _var + "/sheets"
	DEFAULT_CREDENTIALS = _etc + "/sheets/.google/credentials.json"
)
