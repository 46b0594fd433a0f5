package project

import (
	"context"
	"strconv"
	"strings"
)

// countLines shells out to cloc for a per-language breakdown. The tool is
// optional tooling on the operator's machine; any failure degrades to an
// empty result instead of failing the load.
func (p *Project) countLines(ctx context.Context) map[string]LanguageCount {
	languages := make(map[string]LanguageCount)

	output, err := p.runner.Run(ctx, p.Root, "cloc", "--csv", "--quiet", ".")
	if err != nil {
		return languages
	}

	// cloc --csv emits: files,language,blank,comment,code with a trailing
	// SUM row we do not want.
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Split(strings.TrimSpace(line), ",")
		if len(fields) < 5 {
			continue
		}

		language := strings.TrimSpace(fields[1])
		if language == "" || language == "language" || language == "SUM" {
			continue
		}

		files, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			continue
		}

		code, err := strconv.Atoi(strings.TrimSpace(fields[4]))
		if err != nil {
			continue
		}

		languages[language] = LanguageCount{Files: files, Lines: code}
	}

	return languages
}
