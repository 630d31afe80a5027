// Command bo4e-schema dumps the wire schema of the catalog as JSON,
// covering every registered business object and component under both
// naming conventions.
package main

import (
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/pflag"

	_ "github.com/voltmesh/bo4e-go/bo"
	"github.com/voltmesh/bo4e-go/schema"
)

func main() {
	var (
		typeName = pflag.String("type", "", "dump a single type by name (either convention)")
		out      = pflag.String("out", "", "write to file instead of stdout")
		compact  = pflag.Bool("compact", false, "compact output instead of indented")
	)
	pflag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	var payload any
	if *typeName != "" {
		t, ok := schema.ByName(*typeName)
		if !ok {
			log.Error("unknown type", "type", *typeName)
			os.Exit(1)
		}
		payload = t
	} else {
		payload = schema.All()
	}

	var (
		data []byte
		err  error
	)
	if *compact {
		data, err = jsoniter.Marshal(payload)
	} else {
		data, err = jsoniter.MarshalIndent(payload, "", "  ")
	}
	if err != nil {
		log.Error("marshal schema", "error", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if *out == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Error("write schema", "error", err)
			os.Exit(1)
		}
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Error("write schema", "error", err, "path", *out)
		os.Exit(1)
	}
}
