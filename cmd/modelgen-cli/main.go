package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-modelgen/internal/output"
	"github.com/goliatone/go-modelgen/pkg/generator"
	"github.com/goliatone/go-modelgen/pkg/sample"
)

func main() {
	source := flag.String("source", "", "sample JSON file to analyze")
	name := flag.String("name", "", "entity type name (derived from the file name if empty)")
	configPath := flag.String("config", "", "config file path (default .modelgen.yml when present)")
	renderers := flag.String("renderers", "", "comma-separated renderer names (default: mongoose,graphql,resolver)")
	preview := flag.Bool("preview", false, "print the field model and artifacts without writing files")
	force := flag.Bool("force", false, "overwrite existing files without asking")
	flag.Parse()

	if *source == "" {
		log.Fatal("modelgen: -source is required")
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("modelgen: %v", err)
	}

	typeName := *name
	if typeName == "" {
		typeName = sample.DefaultTypeName(*source)
	}
	if typeName == "" {
		log.Fatalf("modelgen: cannot derive a type name from %q, pass -name", *source)
	}

	ctx := context.Background()
	gen := generator.New()

	result, err := gen.Generate(ctx, generator.Request{
		Source:    sample.SourceFromFile(*source),
		TypeName:  typeName,
		Renderers: splitNames(*renderers),
	})
	if err != nil {
		log.Fatalf("modelgen: %v", err)
	}

	if *preview {
		printPreview(result)
		return
	}

	targets := make([]output.Target, 0, len(result.Artifacts))
	for _, artifact := range result.Artifacts {
		targets = append(targets, output.Target{
			Dir:     cfg.dirFor(artifact.Renderer),
			Name:    artifact.Filename,
			Content: artifact.Content,
		})
	}

	writer := output.New(output.Options{Force: *force})
	paths, err := writer.WriteAll(targets)
	if errors.Is(err, output.ErrExists) && !*force {
		if !confirmOverwrite(err) {
			fmt.Println("Aborted, no files written.")
			return
		}
		writer = output.New(output.Options{Force: true})
		paths, err = writer.WriteAll(targets)
	}
	if err != nil {
		log.Fatalf("modelgen: %v", err)
	}

	fmt.Printf("Generated %s (%d fields, %d required)\n",
		typeName, result.Summary.TotalFields, result.Summary.RequiredFields)
	for _, path := range paths {
		fmt.Printf("  %s\n", path)
	}
}

func splitNames(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			names = append(names, trimmed)
		}
	}
	return names
}

func confirmOverwrite(cause error) bool {
	overwrite := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("%v. Overwrite?", cause),
		Default: false,
	}
	if err := survey.AskOne(prompt, &overwrite); err != nil {
		return false
	}
	return overwrite
}

func printPreview(result generator.Result) {
	fmt.Printf("Type: %s\n", result.TypeName)
	fmt.Printf("Fields: %d total, %d required, %d optional\n\n",
		result.Summary.TotalFields, result.Summary.RequiredFields, result.Summary.OptionalFields)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tTYPE\tREQUIRED\tSAMPLES")
	for _, field := range result.Model.Fields {
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n",
			field.Name, field.API, field.Required, formatSamples(field.SampleValues))
	}
	tw.Flush()

	for _, artifact := range result.Artifacts {
		fmt.Printf("\n--- %s (%s) ---\n%s", artifact.Renderer, artifact.Filename, artifact.Content)
	}
}

func formatSamples(values []any) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, fmt.Sprintf("%v", value))
	}
	return strings.Join(parts, ", ")
}
