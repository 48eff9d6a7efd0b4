package journal

import (
	"bytes"
	"os"
	"text/template"
	"time"
)

var orgFuncs = template.FuncMap{
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// WriteOrg renders the run as an org-mode research note.
func (r *RunRecord) WriteOrg(path string) error {
	t, err := template.New("run").Funcs(orgFuncs).Parse(runOrgTemplate)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

const runOrgTemplate = `
* BACKTEST: EMA-Cross {{.FastPeriod}}/{{.SlowPeriod}} {{.Dataset}}
:PROPERTIES:
:RUN_ID:      {{if .RunID}}{{.RunID}}{{else}}(run-id?){{end}}
:STRATEGY:    ema_cross
:DATASET:     {{if .Dataset}}{{.Dataset}}{{else}}(dataset?){{end}}
:START_DATE:  {{.Start.Format "2006-01-02"}}
:END_DATE:    {{.End.Format "2006-01-02"}}
:BARS:        {{.Bars}}
:START_CAP:   {{printf "%.2f" .StartingCapital}}
:FINAL_VALUE: {{printf "%.2f" .FinalValue}}
:RETURN_PCT:  {{printf "%.2f" .ReturnPct}}
:BUY_HOLD:    {{printf "%.2f" .BuyHoldPct}}
:MAX_DD_PCT:  {{if ne .MaxDrawdownPct 0.0}}{{printf "%.2f" .MaxDrawdownPct}}{{else}}(reserved){{end}}
:TRADES:      {{.Trades}}
:WINS:        {{.Wins}}
:LOSSES:      {{.Losses}}
:WIN_RATE:    {{printf "%.2f" .WinRatePct}}
:CREATED:     [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Performance Summary
- Return:           *{{printf "%.2f" .ReturnPct}}%*
- Buy & Hold:       *{{printf "%.2f" .BuyHoldPct}}%*
- Win Rate:         *{{printf "%.2f" .WinRatePct}}%*
- Avg Profit:       {{printf "%.2f" .AvgProfit}}
- Avg Loss:         {{printf "%.2f" .AvgLoss}}

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Wins}} |
| Losses  | {{.Losses}} |
| Total   | {{.Trades}} |

{{- if .Notes }}

** Observations
{{- range .Notes }}
- {{.}}
{{- end }}
{{- end }}
`
