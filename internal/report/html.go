package report

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/readix/readix/internal/criteria"
)

const (
	donutRadiusConstant = 36.0

	radarSizeConstant   = 260.0
	radarRadiusConstant = 90.0
)

var radarRingPercents = []float64{20, 40, 60, 80, 100}

type radarAxis struct {
	AxisX2 string
	AxisY2 string
	LabelX string
	LabelY string
	Name   string
}

type barRow struct {
	Label    string
	Passed   int
	Total    int
	Percent  float64
	BarWidth string
}

type criterionCardView struct {
	Icon        string
	StatusClass string
	Title       string
	Level       int
	Reason      string
	Why         string
	Remediation string
	Evidence    []string
	ShowDetail  bool
}

type pillarGroupView struct {
	Name     string
	Criteria []criterionCardView
}

type opportunityView struct {
	Title  string
	Pillar string
	Level  int
	Why    string
}

type actionItemView struct {
	Title       string
	Pillar      string
	Remediation string
}

type applicationView struct {
	Path string
	Kind string
	Name string
}

type htmlView struct {
	OrgName           string
	RepositoryName    string
	Description       string
	RunID             string
	Generated         string
	Commit            string
	Languages         string
	FrameworkName     string
	FrameworkVersion  string
	LevelAchieved     int
	LevelName         string
	NextLevelTarget   string
	OverallPercent    float64
	OverallPassed     int
	OverallTotal      int
	DonutRadius       float64
	DonutCircumference string
	DonutDashOffset   string
	RadarSize         float64
	RadarCenter       float64
	RadarRings        []string
	RadarAxes         []radarAxis
	RadarPolygon      string
	LevelRows         []barRow
	PillarRows        []barRow
	Strengths         []barRow
	Opportunities     []opportunityView
	ActionItems       []actionItemView
	Applications      []applicationView
	PillarGroups      []pillarGroupView
}

func formatCoordinate(value float64) string {
	return fmt.Sprintf("%.1f", value)
}

func radarPoint(center float64, axisIndex int, axisCount int, radius float64) (float64, float64) {
	angle := -math.Pi/2 + 2*math.Pi*float64(axisIndex)/float64(axisCount)
	return center + radius*math.Cos(angle), center + radius*math.Sin(angle)
}

func radarRingPolygon(center float64, axisCount int, percent float64) string {
	points := make([]string, 0, axisCount)
	for axisIndex := 0; axisIndex < axisCount; axisIndex++ {
		xCoordinate, yCoordinate := radarPoint(center, axisIndex, axisCount, radarRadiusConstant*percent/100)
		points = append(points, formatCoordinate(xCoordinate)+","+formatCoordinate(yCoordinate))
	}
	return strings.Join(points, " ")
}

func statusClass(status criteria.Status) string {
	switch status {
	case criteria.PassStatus:
		return "pass"
	case criteria.FailStatus:
		return "fail"
	default:
		return "skip"
	}
}

func buildHTMLView(document Document) htmlView {
	donutCircumference := 2 * math.Pi * donutRadiusConstant
	donutDashOffset := donutCircumference * (1 - document.Scores.Overall.Percent/100)

	percentByPillar := map[string]float64{}
	for _, pillarScore := range document.Scores.Pillars {
		percentByPillar[pillarScore.Pillar] = pillarScore.Percent
	}

	radarCenter := radarSizeConstant / 2
	axisCount := len(document.Framework.Pillars)
	radarRings := make([]string, 0, len(radarRingPercents))
	for _, ringPercent := range radarRingPercents {
		radarRings = append(radarRings, radarRingPolygon(radarCenter, axisCount, ringPercent))
	}
	radarAxes := make([]radarAxis, 0, axisCount)
	valuePoints := make([]string, 0, axisCount)
	for axisIndex, pillar := range document.Framework.Pillars {
		axisEndX, axisEndY := radarPoint(radarCenter, axisIndex, axisCount, radarRadiusConstant)
		labelX, labelY := radarPoint(radarCenter, axisIndex, axisCount, radarRadiusConstant+18)
		radarAxes = append(radarAxes, radarAxis{
			AxisX2: formatCoordinate(axisEndX),
			AxisY2: formatCoordinate(axisEndY),
			LabelX: formatCoordinate(labelX),
			LabelY: formatCoordinate(labelY),
			Name:   pillar.Name,
		})
		valueX, valueY := radarPoint(radarCenter, axisIndex, axisCount, radarRadiusConstant*percentByPillar[pillar.Name]/100)
		valuePoints = append(valuePoints, formatCoordinate(valueX)+","+formatCoordinate(valueY))
	}

	levelRows := make([]barRow, 0, len(document.Scores.Levels))
	for _, levelScore := range document.Scores.Levels {
		levelRows = append(levelRows, barRow{
			Label:    fmt.Sprintf("L%d %s", levelScore.Level, levelScore.Name),
			Passed:   levelScore.Passed,
			Total:    levelScore.Total,
			Percent:  levelScore.Percent,
			BarWidth: fmt.Sprintf("%.0f%%", levelScore.Percent),
		})
	}
	pillarRows := make([]barRow, 0, len(document.Scores.Pillars))
	for _, pillarScore := range document.Scores.Pillars {
		pillarRows = append(pillarRows, barRow{
			Label:    pillarScore.Pillar,
			Passed:   pillarScore.Passed,
			Total:    pillarScore.Total,
			Percent:  pillarScore.Percent,
			BarWidth: fmt.Sprintf("%.0f%%", pillarScore.Percent),
		})
	}
	strengths := make([]barRow, 0, len(document.Highlights.Strengths))
	for _, strength := range document.Highlights.Strengths {
		strengths = append(strengths, barRow{
			Label:   strength.Pillar,
			Passed:  strength.Passed,
			Total:   strength.Total,
			Percent: strength.Percent,
		})
	}
	opportunities := make([]opportunityView, 0, len(document.Highlights.Opportunities))
	for _, opportunity := range document.Highlights.Opportunities {
		opportunities = append(opportunities, opportunityView{
			Title:  opportunity.Title,
			Pillar: opportunity.Pillar,
			Level:  opportunity.Level,
			Why:    opportunity.Why,
		})
	}
	actionItems := make([]actionItemView, 0, len(document.ActionItems))
	for _, actionItem := range document.ActionItems {
		actionItems = append(actionItems, actionItemView{
			Title:       actionItem.Title,
			Pillar:      actionItem.Pillar,
			Remediation: actionItem.Remediation,
		})
	}
	applications := make([]applicationView, 0, len(document.Meta.Applications))
	for _, application := range document.Meta.Applications {
		applications = append(applications, applicationView{
			Path: application.Path,
			Kind: string(application.Kind),
			Name: application.Name,
		})
	}

	grouped := criteriaByPillar(document.Criteria)
	pillarGroups := make([]pillarGroupView, 0, len(document.Framework.Pillars))
	for _, pillar := range document.Framework.Pillars {
		pillarResults := grouped[pillar.Name]
		if len(pillarResults) == 0 {
			continue
		}
		cards := make([]criterionCardView, 0, len(pillarResults))
		for _, result := range pillarResults {
			evidence := []string{}
			for _, unitResult := range result.UnitResults {
				for _, evidencePath := range unitResult.Evidence {
					evidence = append(evidence, unitResult.Unit+": "+evidencePath)
				}
			}
			cards = append(cards, criterionCardView{
				Icon:        statusIcon(result.Status),
				StatusClass: statusClass(result.Status),
				Title:       result.Title,
				Level:       result.Level,
				Reason:      result.Reason,
				Why:         result.Why,
				Remediation: result.Remediation,
				Evidence:    evidence,
				ShowDetail:  result.Status != criteria.PassStatus,
			})
		}
		pillarGroups = append(pillarGroups, pillarGroupView{Name: pillar.Name, Criteria: cards})
	}

	return htmlView{
		OrgName:            document.Meta.OrgName,
		RepositoryName:     document.Meta.RepositoryName,
		Description:        document.Meta.RepositoryDescription,
		RunID:              document.Meta.RunID,
		Generated:          document.Meta.GeneratedAt.Format("2006-01-02 15:04:05 MST"),
		Commit:             shortCommit(document.Meta.CommitSHA),
		Languages:          strings.Join(document.Meta.Languages, ", "),
		FrameworkName:      document.Framework.Name,
		FrameworkVersion:   document.Framework.Version,
		LevelAchieved:      document.Scores.LevelAchieved,
		LevelName:          levelNameByNumber(document, document.Scores.LevelAchieved),
		NextLevelTarget:    document.Scores.NextLevelTarget,
		OverallPercent:     document.Scores.Overall.Percent,
		OverallPassed:      document.Scores.Overall.Passed,
		OverallTotal:       document.Scores.Overall.Total,
		DonutRadius:        donutRadiusConstant,
		DonutCircumference: formatCoordinate(donutCircumference),
		DonutDashOffset:    formatCoordinate(donutDashOffset),
		RadarSize:          radarSizeConstant,
		RadarCenter:        radarCenter,
		RadarRings:         radarRings,
		RadarAxes:          radarAxes,
		RadarPolygon:       strings.Join(valuePoints, " "),
		LevelRows:          levelRows,
		PillarRows:         pillarRows,
		Strengths:          strengths,
		Opportunities:      opportunities,
		ActionItems:        actionItems,
		Applications:       applications,
		PillarGroups:       pillarGroups,
	}
}

var htmlReportTemplate = template.Must(template.New("report").Parse(htmlReportTemplateText))

// RenderHTML produces a standalone HTML report page with inline styles and
// SVG charts.
func RenderHTML(document Document) (string, error) {
	var builder strings.Builder
	if executeError := htmlReportTemplate.Execute(&builder, buildHTMLView(document)); executeError != nil {
		return "", executeError
	}
	return builder.String(), nil
}

const htmlReportTemplateText = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.OrgName}} – Agent Readiness Report</title>
<style>
:root {
  --bg: #0b1020;
  --card: #141a2e;
  --card-border: #232c4a;
  --text: #e6e9f2;
  --muted: #8b93ad;
  --accent: #5b8cff;
  --pass: #3ecf8e;
  --fail: #ff6b6b;
  --skip: #8b93ad;
}
* { box-sizing: border-box; }
body { margin: 0; padding: 32px; background: var(--bg); color: var(--text); font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
.container { max-width: 1060px; margin: 0 auto; }
header h1 { margin: 0 0 4px; font-size: 26px; }
header .meta { color: var(--muted); font-size: 13px; line-height: 1.7; }
header .meta code { color: var(--text); background: var(--card); padding: 1px 6px; border-radius: 4px; }
.grid { display: grid; gap: 16px; grid-template-columns: repeat(auto-fit, minmax(300px, 1fr)); margin-top: 24px; }
.card { background: var(--card); border: 1px solid var(--card-border); border-radius: 12px; padding: 20px; }
.card h2 { margin: 0 0 12px; font-size: 15px; color: var(--muted); text-transform: uppercase; letter-spacing: 0.06em; }
.summary { display: flex; align-items: center; gap: 20px; }
.summary .big { font-size: 34px; font-weight: 700; }
.summary .sub { color: var(--muted); font-size: 13px; }
.donut-track { stroke: var(--card-border); }
.donut-value { stroke: var(--accent); transition: stroke-dashoffset 0.6s ease; }
.donut-label { fill: var(--text); font-size: 18px; font-weight: 700; }
.radar-ring { fill: none; stroke: var(--card-border); }
.radar-axis { stroke: var(--card-border); }
.radar-shape { fill: rgba(91, 140, 255, 0.35); stroke: var(--accent); stroke-width: 2; }
.radar-label { fill: var(--muted); font-size: 9px; text-anchor: middle; }
table { width: 100%; border-collapse: collapse; font-size: 13px; }
th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid var(--card-border); }
th { color: var(--muted); font-weight: 600; }
.bar { background: var(--card-border); border-radius: 4px; height: 8px; min-width: 90px; overflow: hidden; }
.bar span { display: block; height: 100%; background: var(--accent); }
ul.cards { list-style: none; margin: 0; padding: 0; }
ul.cards li { padding: 10px 0; border-bottom: 1px solid var(--card-border); font-size: 13px; }
ul.cards li:last-child { border-bottom: none; }
ul.cards .where { color: var(--muted); }
details { margin-top: 16px; }
details summary { cursor: pointer; font-weight: 600; padding: 6px 0; }
.criterion { padding: 10px 12px; margin: 8px 0; border: 1px solid var(--card-border); border-radius: 8px; font-size: 13px; }
.criterion .reason { color: var(--muted); margin-top: 4px; }
.criterion .hint { color: var(--muted); margin-top: 4px; font-size: 12px; }
.criterion.pass { border-left: 3px solid var(--pass); }
.criterion.fail { border-left: 3px solid var(--fail); }
.criterion.skip { border-left: 3px solid var(--skip); }
.icon.pass { color: var(--pass); }
.icon.fail { color: var(--fail); }
.icon.skip { color: var(--skip); }
.level-pill { display: inline-block; background: var(--accent); color: #fff; border-radius: 999px; padding: 2px 10px; font-size: 12px; margin-left: 8px; }
footer { margin-top: 32px; color: var(--muted); font-size: 12px; text-align: center; }
</style>
</head>
<body>
<div class="container">
<header>
  <h1>{{.OrgName}} – Agent Readiness Report</h1>
  <div class="meta">
    Repository <code>{{.RepositoryName}}</code>
    {{if .Commit}} · commit <code>{{.Commit}}</code>{{end}}
    · run <code>{{.RunID}}</code> · generated {{.Generated}}<br>
    {{if .Description}}{{.Description}}<br>{{end}}
    {{if .Languages}}Languages: {{.Languages}}{{end}}
  </div>
</header>

<div class="grid">
  <div class="card">
    <h2>Overall pass rate</h2>
    <div class="summary">
      <svg width="96" height="96" viewBox="0 0 96 96" role="img" aria-label="overall pass rate">
        <circle class="donut-track" cx="48" cy="48" r="{{.DonutRadius}}" fill="none" stroke-width="10"></circle>
        <circle class="donut-value" cx="48" cy="48" r="{{.DonutRadius}}" fill="none" stroke-width="10"
          stroke-linecap="round" stroke-dasharray="{{.DonutCircumference}}"
          stroke-dashoffset="{{.DonutDashOffset}}" transform="rotate(-90 48 48)"></circle>
        <text class="donut-label" x="48" y="54" text-anchor="middle">{{printf "%.0f" .OverallPercent}}%</text>
      </svg>
      <div>
        <div class="big">{{.OverallPassed}}/{{.OverallTotal}}</div>
        <div class="sub">criteria passed</div>
        <div class="sub">Level achieved: <span class="level-pill">L{{.LevelAchieved}} {{.LevelName}}</span></div>
      </div>
    </div>
    <p class="sub" style="color: var(--muted); font-size: 13px;">{{.NextLevelTarget}}</p>
  </div>

  <div class="card">
    <h2>Pillar radar</h2>
    <svg width="{{.RadarSize}}" height="{{.RadarSize}}" viewBox="0 0 {{.RadarSize}} {{.RadarSize}}" role="img" aria-label="pillar pass rates">
      {{range .RadarRings}}<polygon class="radar-ring" points="{{.}}"></polygon>
      {{end}}{{range .RadarAxes}}<line class="radar-axis" x1="{{$.RadarCenter}}" y1="{{$.RadarCenter}}" x2="{{.AxisX2}}" y2="{{.AxisY2}}"></line>
      {{end}}<polygon class="radar-shape" points="{{.RadarPolygon}}"></polygon>
      {{range .RadarAxes}}<text class="radar-label" x="{{.LabelX}}" y="{{.LabelY}}">{{.Name}}</text>
      {{end}}
    </svg>
  </div>
</div>

<div class="grid">
  <div class="card">
    <h2>Maturity levels</h2>
    <table>
      <tr><th>Level</th><th>Passed</th><th>Progress</th></tr>
      {{range .LevelRows}}<tr>
        <td>{{.Label}}</td>
        <td>{{.Passed}}/{{.Total}}</td>
        <td><div class="bar"><span style="width: {{.BarWidth}}"></span></div></td>
      </tr>
      {{end}}
    </table>
  </div>

  <div class="card">
    <h2>Pillars</h2>
    <table>
      <tr><th>Pillar</th><th>Passed</th><th>Progress</th></tr>
      {{range .PillarRows}}<tr>
        <td>{{.Label}}</td>
        <td>{{.Passed}}/{{.Total}}</td>
        <td><div class="bar"><span style="width: {{.BarWidth}}"></span></div></td>
      </tr>
      {{end}}
    </table>
  </div>
</div>

<div class="grid">
  {{if .Strengths}}<div class="card">
    <h2>Top strengths</h2>
    <ul class="cards">
      {{range .Strengths}}<li><strong>{{.Label}}</strong> <span class="where">{{.Passed}}/{{.Total}} ({{printf "%.0f" .Percent}}%)</span></li>
      {{end}}
    </ul>
  </div>{{end}}

  {{if .Opportunities}}<div class="card">
    <h2>Top opportunities</h2>
    <ul class="cards">
      {{range .Opportunities}}<li><strong>{{.Title}}</strong> <span class="where">{{.Pillar}}, level {{.Level}}</span><br>{{.Why}}</li>
      {{end}}
    </ul>
  </div>{{end}}

  {{if .ActionItems}}<div class="card">
    <h2>Action items</h2>
    <ul class="cards">
      {{range .ActionItems}}<li><strong>{{.Title}}</strong> <span class="where">{{.Pillar}}</span><br>{{.Remediation}}</li>
      {{end}}
    </ul>
  </div>{{end}}
</div>

{{if .Applications}}<div class="card" style="margin-top: 16px;">
  <h2>Applications discovered</h2>
  <ul class="cards">
    {{range .Applications}}<li><code>{{.Path}}</code> <span class="where">({{.Kind}})</span>{{if .Name}} {{.Name}}{{end}}</li>
    {{end}}
  </ul>
</div>{{end}}

{{range .PillarGroups}}
<details open>
  <summary>{{.Name}}</summary>
  {{range .Criteria}}<div class="criterion {{.StatusClass}}">
    <span class="icon {{.StatusClass}}">{{.Icon}}</span> <strong>{{.Title}}</strong> <span class="level-pill">L{{.Level}}</span>
    <div class="reason">{{.Reason}}</div>
    {{if .ShowDetail}}{{if .Why}}<div class="hint">Why it matters: {{.Why}}</div>{{end}}
    {{if .Remediation}}<div class="hint">Recommendation: {{.Remediation}}</div>{{end}}
    {{range .Evidence}}<div class="hint">Evidence {{.}}</div>
    {{end}}{{end}}
  </div>
  {{end}}
</details>
{{end}}

<div class="card" style="margin-top: 16px;">
  <h2>How to read this</h2>
  <p style="font-size: 13px; color: var(--muted); margin: 0;">
    Each criterion receives a binary pass or fail verdict; criteria whose preconditions are absent are
    skipped and excluded from every denominator. Levels gate each other: the next level unlocks once the
    previous level's pass rate reaches 80%. Pillar scores show where engineering hygiene is strong and
    where automated agents will struggle.
  </p>
</div>

<footer>{{.FrameworkName}} v{{.FrameworkVersion}}</footer>
</div>
</body>
</html>
`
