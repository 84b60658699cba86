package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rohmanhakim/linkscrub/internal/scrubber"
	"github.com/rohmanhakim/linkscrub/pkg/hashutil"
)

type reportDTO struct {
	URLsFound     int         `json:"urlsFound"`
	URLsCleaned   int         `json:"urlsCleaned"`
	ParamsRemoved int         `json:"paramsRemoved"`
	DigestAlgo    string      `json:"digestAlgo"`
	InputDigest   string      `json:"inputDigest"`
	OutputDigest  string      `json:"outputDigest"`
	Changes       []changeDTO `json:"changes"`
}

type changeDTO struct {
	Fingerprint string   `json:"fingerprint"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	Original    string   `json:"original"`
	Cleaned     string   `json:"cleaned"`
	Removed     []string `json:"removed,omitempty"`
	PathTrimmed bool     `json:"pathTrimmed,omitempty"`
}

func newReportDTO(input string, result scrubber.Report, algo hashutil.HashAlgo) (reportDTO, error) {
	inputDigest, err := hashutil.HashBytes([]byte(input), algo)
	if err != nil {
		return reportDTO{}, err
	}
	outputDigest, err := hashutil.HashBytes([]byte(result.Output()), algo)
	if err != nil {
		return reportDTO{}, err
	}

	dto := reportDTO{
		URLsFound:     result.URLsFound(),
		URLsCleaned:   result.URLsCleaned(),
		ParamsRemoved: result.ParamsRemoved(),
		DigestAlgo:    string(algo),
		InputDigest:   inputDigest,
		OutputDigest:  outputDigest,
		Changes:       []changeDTO{},
	}
	for _, change := range result.Changes() {
		dto.Changes = append(dto.Changes, changeDTO{
			Fingerprint: hashutil.Fingerprint(change.Original()),
			Start:       change.Span().Start(),
			End:         change.Span().End(),
			Original:    change.Original(),
			Cleaned:     change.Cleaned(),
			Removed:     change.RemovedKeys(),
			PathTrimmed: change.PathTrimmed(),
		})
	}
	return dto, nil
}

func writeReport(w io.Writer, input string, result scrubber.Report, algo hashutil.HashAlgo) error {
	dto, err := newReportDTO(input, result, algo)
	if err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(dto)
}
