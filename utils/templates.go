package utils

// RootTemplate returns the root usage template
func RootTemplate() string {
	return `  Usage:{{if .Runnable}}
	{{.CommandPath}} [command]

  Server Profile Commands:{{range .Commands}}{{if (or (eq .Name "server-add") (eq .Name "server-remove") (eq .Name "server-list") (eq .Name "get-default") (eq .Name "set-default"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

  Host Reporting Commands:{{range .Commands}}{{if (or (eq .Name "host-list") (eq .Name "host-memory") (eq .Name "host-cpu") (eq .Name "host-os") (eq .Name "host-hotfix") (eq .Name "host-disks") (eq .Name "host-hba") (eq .Name "host-mpio"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

  Host Network Commands:{{range .Commands}}{{if (or (eq .Name "host-adapters") (eq .Name "host-ips") (eq .Name "host-lldp") (eq .Name "host-nic-status") (eq .Name "host-vmm-nics") (eq .Name "host-vswitch"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

  Cluster Commands:{{range .Commands}}{{if (or (eq .Name "cluster-info") (eq .Name "cluster-nodes") (eq .Name "csv-list") (eq .Name "csv-provision"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

  Virtual Machine Commands:{{range .Commands}}{{if (or (eq .Name "vm-list") (eq .Name "vm-disks") (eq .Name "vm-nics") (eq .Name "vm-checkpoints") (eq .Name "vm-integration") (eq .Name "vm-timesync"))}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

  Version Command:{{range .Commands}}{{if (eq .Name "version")}}
	{{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}
  
Use "{{.CommandPath}} [command] --help" for more information on a command.{{end}}

  `
}

// SubCmdTemplate returns the usage template used for all subcommands
func SubCmdTemplate() string {
	return `
  Usage:{{if .Runnable}}
    {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
    {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}
  
  Aliases:
    {{.NameAndAliases}}{{end}}{{if .HasExample}}
  
  Examples:
  {{.Example}}{{end}}{{if .HasAvailableSubCommands}}
  
  Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
    {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}
  
  Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}
  
  Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}
  
  Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
	{{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}
  
  Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
  
`
}
