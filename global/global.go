// package global is a collection of application-wide references and
// constants that need to be accessible in all packages in the
// application. The package should depend on _no_ other packages
// inside of this module/application.
package global

const ApplicationName = "itemq"

const (
	EnvVarLogQuietStdOut = "ITEMQ_LOG_QUIET_STDOUT"
	EnvVarLogQuietSyslog = "ITEMQ_LOG_QUIET_SYSLOG"
	EnvVarLogFormatJSON  = "ITEMQ_LOG_FORMAT_JSON"
	EnvVarLogJSONColor   = "ITEMQ_LOG_COLOR_JSON"
)

const DefaultConfigFileName = ".itemq.yaml"
