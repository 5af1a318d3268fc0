package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:              %v\n", cfg.Debug)
	fmt.Fprintf(out, "  JSON Mode:          %v\n", cfg.JSONMode)
	fmt.Fprintf(out, "  Log File:           %s\n", cfg.LogFile)
	fmt.Fprintf(out, "  Rank Limit:         %d\n", cfg.RankLimit())
	fmt.Fprintf(out, "  Workers:            %d\n", cfg.WorkerCount())
	fmt.Fprintf(out, "  Repair Encoding:    %v\n", cfg.RepairEncoding)
	fmt.Fprintf(out, "  Media Types:        %v\n", cfg.AcceptedMediaTypes())
	fmt.Fprintf(out, "  Messages Field:     %s\n", cfg.MessagesFieldName())
	fmt.Fprintf(out, "  Content Field:      %s\n", cfg.ContentFieldName())
	fmt.Fprintf(out, "  Extra Stop Words:   %v\n", cfg.ExtraStopWords)
	fmt.Fprintf(out, "  Input Extensions:   %v\n", cfg.InputExtensions())
	fmt.Fprintf(out, "  Exclude Globs:      %v\n", cfg.ExcludeGlobs)
	fmt.Fprintf(out, "  Listen Address:     %s\n", cfg.Addr())
	fmt.Fprintf(out, "  Max Upload Bytes:   %d\n", cfg.UploadLimit())
}
