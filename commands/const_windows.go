package commands

const (
	_etc = `C:\ProgramData\uhppoted`
	_var = `C:\ProgramData\uhppoted`

	DEFAULT_WORKDIR     = _var + `\sheets`
	DEFAULT_CREDENTIALS = _etc + `\sheets\.google\credentials.json`
)
