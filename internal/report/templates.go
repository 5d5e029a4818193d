package report

import (
	"github.com/reillydonovan/aicivsim-sub000/internal/era"
	"github.com/reillydonovan/aicivsim-sub000/internal/scenario"
)

// DefaultScenario supplies the phrasing for any (scenario, era) pair a
// section has no bespoke copy for.
const DefaultScenario = scenario.StatusQuo

type key struct {
	scenario string
	era      era.Era
}

type table map[key]string

// #region summary
var summaryTable = table{
	{scenario.StatusQuo, era.Dawn}: `{{.Year}} is year {{.Elapsed}} of the status-quo path and little has moved yet. Emissions sit at {{f1 .Emissions}} Gt CO2e, {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} the {{.BaselineYear}} baseline, and civic trust reads {{f3 .Trust}}. The composite score of {{.Score}}/100 ({{.Rating}}) mostly reflects inherited conditions rather than new policy.`,

	{scenario.StatusQuo, era.Diverge}: `By {{.Year}} the drift of the status quo is visible. Emissions of {{f1 .Emissions}} Gt CO2e remain {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} the {{.BaselineYear}} baseline while the Gini coefficient has moved {{updown .DGini}} to {{f3 .Gini}}. AI influence stands at {{f3 .AI}} against trust of {{f3 .Trust}}. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.StatusQuo, era.Mature}: `In {{.Year}}, {{.Elapsed}} years in, the cost of inaction has compounded. Annual emissions are {{f1 .Emissions}} Gt CO2e ({{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline) and resilience has {{fellrose .DResilience}} to {{f3 .Resilience}}. The composite score of {{.Score}}/100 ({{.Rating}}) describes a society absorbing shocks it chose not to prepare for.`,

	{scenario.StatusQuo, era.Legacy}: `By {{.Year}} the status-quo path has become the inheritance of a new generation. Emissions of {{f1 .Emissions}} Gt CO2e, a Gini of {{f3 .Gini}} and civic trust of {{f3 .Trust}} are no longer trends but the settled shape of daily life. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.Moderate, era.Dawn}: `{{.Year}} opens the moderate-reform path with a {{share .Dividend}} civic dividend and {{share .Capex}} of the budget committed to climate. Emissions stand at {{f1 .Emissions}} Gt CO2e, {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} the {{.BaselineYear}} baseline. At {{.Score}}/100 ({{.Rating}}) it is too early to credit the reforms with results.`,

	{scenario.Moderate, era.Diverge}: `By {{.Year}} moderate reform is separating from the status quo. Emissions have {{fellrose .DEmissions}} to {{f1 .Emissions}} Gt CO2e ({{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline) and the Gini coefficient reads {{f3 .Gini}}. The composite score of {{.Score}}/100 ({{.Rating}}) shows steady, unspectacular gains.`,

	{scenario.Moderate, era.Mature}: `In {{.Year}} the incremental approach has had {{.Elapsed}} years to compound. Emissions of {{f1 .Emissions}} Gt CO2e sit {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline, trust reads {{f3 .Trust}} and resilience {{f3 .Resilience}}. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.Moderate, era.Legacy}: `By {{.Year}} moderate reform has produced a society that is better but not transformed. Emissions of {{f1 .Emissions}} Gt CO2e and a Gini of {{f3 .Gini}} mark real progress on the {{.BaselineYear}} baseline, and the composite score of {{.Score}}/100 ({{.Rating}}) records it.`,

	{scenario.Aggressive, era.Dawn}: `{{.Year}} launches the aggressive transition: a {{share .Dividend}} civic dividend, {{charter .Charter}} and {{share .Capex}} of public budgets directed at climate. Emissions are {{f1 .Emissions}} Gt CO2e, {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} the {{.BaselineYear}} baseline. The composite score of {{.Score}}/100 ({{.Rating}}) reflects disruption as much as progress.`,

	{scenario.Aggressive, era.Diverge}: `By {{.Year}} the aggressive transition is pulling away. Emissions have {{fellrose .DEmissions}} to {{f1 .Emissions}} Gt CO2e, {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} the {{.BaselineYear}} baseline, while civic trust has {{fellrose .DTrust}} to {{f3 .Trust}} and the Gini coefficient to {{f3 .Gini}}. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.Aggressive, era.Mature}: `In {{.Year}} the transition is no longer a program but an economy. Emissions of {{f1 .Emissions}} Gt CO2e ({{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline), resilience of {{f3 .Resilience}} and trust of {{f3 .Trust}} show compounding returns on early investment. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.Aggressive, era.Legacy}: `By {{.Year}}, {{.Elapsed}} years on, the aggressive path has rewritten the baseline. Emissions stand at {{f1 .Emissions}} Gt CO2e against {{f1 .BaseEmissions}} in {{.BaselineYear}}, and a Gini of {{f3 .Gini}} describes a far more equal society. The composite score of {{.Score}}/100 ({{.Rating}}) is the legacy a generation inherits.`,

	{scenario.WorstCase, era.Dawn}: `{{.Year}} begins the fragmentation path. Emissions are {{f1 .Emissions}} Gt CO2e, {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} the {{.BaselineYear}} baseline, and civic trust has already {{fellrose .DTrust}} to {{f3 .Trust}}. The composite score of {{.Score}}/100 ({{.Rating}}) is an early warning, not yet a verdict.`,

	{scenario.WorstCase, era.Diverge}: `By {{.Year}} fragmentation is self-reinforcing. Emissions have {{fellrose .DEmissions}} to {{f1 .Emissions}} Gt CO2e while trust sits at {{f3 .Trust}} and AI influence at {{f3 .AI}}; {{gapword .Gap}}. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.WorstCase, era.Mature}: `In {{.Year}} the fragmentation path has hardened into crisis. Emissions of {{f1 .Emissions}} Gt CO2e ({{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline), a Gini of {{f3 .Gini}} and resilience of {{f3 .Resilience}} leave little room for recovery. Composite score: {{.Score}}/100 ({{.Rating}}).`,

	{scenario.WorstCase, era.Legacy}: `By {{.Year}} the fragmentation path has become the world. Emissions stand at {{f1 .Emissions}} Gt CO2e against {{f1 .BaseEmissions}} in {{.BaselineYear}}, trust at {{f3 .Trust}}, and the composite score of {{.Score}}/100 ({{.Rating}}) measures what was lost.`,
}

// #endregion summary

// #region comparison
var comparisonTable = table{
	{scenario.StatusQuo, era.Dawn}:    `In {{.Year}} the gap between this path and {{.OpposingName}} is still narrow; most of the differences below are within a few years of policy noise.`,
	{scenario.StatusQuo, era.Diverge}: `By {{.Year}} the paths have visibly parted. Against {{.OpposingName}}, this scenario differs as follows:`,
	{scenario.StatusQuo, era.Mature}:  `In {{.Year}} the distance from {{.OpposingName}} is structural rather than cyclical:`,
	{scenario.StatusQuo, era.Legacy}:  `By {{.Year}} the two paths describe different societies. Measured against {{.OpposingName}}:`,

	{scenario.Aggressive, era.Diverge}: `By {{.Year}} the transition's choices show up directly against {{.OpposingName}}. Each line is this path minus the comparison:`,
	{scenario.Aggressive, era.Legacy}:  `By {{.Year}} the cumulative value of acting early is clearest against {{.OpposingName}}:`,

	{scenario.WorstCase, era.Mature}: `In {{.Year}} the fragmentation path trails {{.OpposingName}} on most dimensions:`,
}

// #endregion comparison

// #region baseline
var baselineTable = table{
	{scenario.StatusQuo, era.Dawn}:    `Only {{.Elapsed}} years separate {{.Year}} from the {{.BaselineYear}} baseline. Gini {{signed .DGini}}, civic trust {{signed .DTrust}}, AI influence {{signed .DAI}}, emissions {{signed1 .DEmissions}} Gt CO2e, resilience {{signed .DResilience}}.`,
	{scenario.StatusQuo, era.Diverge}: `Against the {{.BaselineYear}} baseline: Gini {{signed .DGini}} (now {{f3 .Gini}}), civic trust {{signed .DTrust}} (now {{f3 .Trust}}), AI influence {{signed .DAI}} (now {{f3 .AI}}), emissions {{signed1 .DEmissions}} Gt CO2e (now {{f1 .Emissions}}), resilience {{signed .DResilience}} (now {{f3 .Resilience}}).`,
	{scenario.StatusQuo, era.Mature}:  `Over {{.Elapsed}} years since {{.BaselineYear}}: Gini {{signed .DGini}}, civic trust {{signed .DTrust}}, AI influence {{signed .DAI}}, emissions {{signed1 .DEmissions}} Gt CO2e ({{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline), resilience {{signed .DResilience}}.`,
	{scenario.StatusQuo, era.Legacy}:  `The {{.BaselineYear}} baseline is now {{.Elapsed}} years distant. Net change: Gini {{signed .DGini}}, civic trust {{signed .DTrust}}, AI influence {{signed .DAI}}, emissions {{signed1 .DEmissions}} Gt CO2e, resilience {{signed .DResilience}}.`,

	{scenario.Aggressive, era.Dawn}: `Early movement against {{.BaselineYear}}: emissions {{signed1 .DEmissions}} Gt CO2e and Gini {{signed .DGini}}, while civic trust ({{signed .DTrust}}) and resilience ({{signed .DResilience}}) lag the spending. AI influence has moved {{signed .DAI}}.`,
}

// #endregion baseline

// #region actions
var actionsTable = table{
	{scenario.StatusQuo, era.Dawn}:    `No new levers are pulled. The civic dividend stays at {{share .Dividend}}, climate spending at {{share .Capex}} of budgets, and there is {{charter .Charter}}.`,
	{scenario.StatusQuo, era.Diverge}: `Policy continues on autopilot: {{share .Capex}} climate spending and a {{share .Dividend}} dividend, with {{charter .Charter}} while AI influence climbs to {{f3 .AI}}.`,
	{scenario.StatusQuo, era.Mature}:  `Action is reactive: disaster relief and emergency subsidies replace planned investment. Climate capex remains {{share .Capex}} of budgets.`,
	{scenario.StatusQuo, era.Legacy}:  `The levers that were never pulled have rusted in place. With {{charter .Charter}} and a {{share .Dividend}} dividend, policy is defined by what it declined to do.`,

	{scenario.Moderate, era.Dawn}:    `A {{share .Dividend}} civic dividend is introduced alongside {{share .Capex}} climate capex. Governance of AI relies on {{charter .Charter}}.`,
	{scenario.Moderate, era.Diverge}: `Reforms are extended cautiously: the {{share .Dividend}} dividend is protected from cuts and climate capex holds at {{share .Capex}}.`,

	{scenario.Aggressive, era.Dawn}:    `The transition front-loads investment: {{share .Capex}} of budgets go to climate, a {{share .Dividend}} civic dividend recycles revenue to households, and {{charter .Charter}} sets audit duties for automated systems.`,
	{scenario.Aggressive, era.Diverge}: `Investment shifts from construction to operation. The {{share .Dividend}} dividend is indexed, climate capex holds at {{share .Capex}}, and {{charter .Charter}} is extended to public-sector AI.`,
	{scenario.Aggressive, era.Mature}:  `With emissions at {{f1 .Emissions}} Gt CO2e, effort moves to adaptation and maintenance while the dividend keeps trust at {{f3 .Trust}}.`,
	{scenario.Aggressive, era.Legacy}:  `The early levers are now institutions: a permanent {{share .Dividend}} dividend and {{charter .Charter}} have outlived the governments that created them.`,

	{scenario.WorstCase, era.Dawn}:    `Levers are pulled in the wrong direction: climate capex is cut to {{share .Capex}} and the dividend to {{share .Dividend}}, with {{charter .Charter}}.`,
	{scenario.WorstCase, era.Diverge}: `Policy fragments by region and interest group. There is {{charter .Charter}}, and AI influence of {{f3 .AI}} is governed, if at all, by the firms that deploy it.`,
}

// #endregion actions

// #region economy
var economyTable = table{
	{scenario.StatusQuo, era.Dawn}:    `Labor markets look familiar. The Gini coefficient of {{f3 .Gini}} ({{signed .DGini}}) reflects existing divides, and automation at {{f3 .AI}} touches mostly routine work.`,
	{scenario.StatusQuo, era.Diverge}: `Automation at {{f3 .AI}} is hollowing out mid-skill employment and the Gini coefficient has moved {{updown .DGini}} to {{f3 .Gini}}. Gains flow to capital owners first.`,
	{scenario.StatusQuo, era.Mature}:  `A two-tier economy has settled in: a Gini of {{f3 .Gini}} and AI influence of {{f3 .AI}} leave many households dependent on transfers that were never designed for permanence.`,
	{scenario.StatusQuo, era.Legacy}:  `Inequality of {{f3 .Gini}} has become hereditary. Work is organized around systems with AI influence of {{f3 .AI}}, and mobility is the exception.`,

	{scenario.Aggressive, era.Diverge}: `The {{share .Dividend}} dividend cushions automation at {{f3 .AI}}: the Gini coefficient has moved {{updown .DGini}} to {{f3 .Gini}} even as routine jobs disappear. Climate investment is the largest new employer.`,
	{scenario.Aggressive, era.Mature}:  `Green industries are the economy's backbone. A Gini of {{f3 .Gini}} shows the dividend working, and shorter working weeks share the productivity of automation at {{f3 .AI}}.`,

	{scenario.WorstCase, era.Diverge}: `Automation at {{f3 .AI}} is displacing workers faster than any program can absorb, and the Gini coefficient has climbed to {{f3 .Gini}}.`,
	{scenario.WorstCase, era.Mature}:  `Informal work dominates. A Gini of {{f3 .Gini}} describes an economy split between those who own automated systems and those displaced by them.`,
}

// #endregion economy

// #region energy
var energyTable = table{
	{scenario.StatusQuo, era.Dawn}:    `The grid is still largely fossil-fueled at {{f1 .Emissions}} Gt CO2e per year, and resilience of {{f3 .Resilience}} leaves infrastructure exposed to extreme weather.`,
	{scenario.StatusQuo, era.Diverge}: `Renewables grow on market economics alone. Emissions of {{f1 .Emissions}} Gt CO2e are {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline, and aging infrastructure keeps resilience at {{f3 .Resilience}}.`,
	{scenario.StatusQuo, era.Mature}:  `Climate damage now drives infrastructure budgets. Resilience has {{fellrose .DResilience}} to {{f3 .Resilience}} and emissions remain {{f1 .Emissions}} Gt CO2e.`,
	{scenario.StatusQuo, era.Legacy}:  `Infrastructure is patched rather than planned. At {{f1 .Emissions}} Gt CO2e and resilience of {{f3 .Resilience}}, every season tests systems built for a different climate.`,

	{scenario.Aggressive, era.Dawn}:    `Grid modernization begins with {{share .Capex}} of budgets. Emissions already read {{f1 .Emissions}} Gt CO2e ({{signed1 .DEmissions}} vs. baseline) while resilience projects break ground.`,
	{scenario.Aggressive, era.Diverge}: `Clean generation dominates new capacity. Emissions of {{f1 .Emissions}} Gt CO2e are {{pct .EmissionsPct}} {{belowabove .EmissionsPct}} baseline and resilience has {{fellrose .DResilience}} to {{f3 .Resilience}}.`,
	{scenario.Aggressive, era.Mature}:  `A distributed, storage-backed grid carries most demand. Emissions of {{f1 .Emissions}} Gt CO2e and resilience of {{f3 .Resilience}} mark infrastructure built for the climate it faces.`,

	{scenario.WorstCase, era.Diverge}: `Investment collapses. Emissions have {{fellrose .DEmissions}} to {{f1 .Emissions}} Gt CO2e and resilience of {{f3 .Resilience}} leaves regions without reliable power after storms.`,
}

// #endregion energy

// #region politics
var politicsTable = table{
	{scenario.StatusQuo, era.Dawn}:    `Politics is polarized but stable. Civic trust of {{f3 .Trust}} ({{signed .DTrust}}) limits the appetite for ambitious reform.`,
	{scenario.StatusQuo, era.Diverge}: `Trust has {{fellrose .DTrust}} to {{f3 .Trust}}. Each election relitigates the last, and long-horizon policy becomes hard to sustain.`,
	{scenario.StatusQuo, era.Mature}:  `With civic trust at {{f3 .Trust}}, institutions struggle to coordinate responses to compounding shocks.`,
	{scenario.StatusQuo, era.Legacy}:  `Civic trust of {{f3 .Trust}} is the new normal. Few remember institutions that worked differently.`,

	{scenario.Moderate, era.Diverge}: `Visible but modest results have nudged civic trust to {{f3 .Trust}} ({{signed .DTrust}}). Coalitions form around protecting what works.`,

	{scenario.Aggressive, era.Dawn}:    `The transition is contested. Civic trust at {{f3 .Trust}} ({{signed .DTrust}}) will decide whether reforms survive their first electoral test.`,
	{scenario.Aggressive, era.Diverge}: `Dividend checks and visible projects have moved civic trust {{updown .DTrust}} to {{f3 .Trust}}. Opposition shifts from whether to act to how fast.`,
	{scenario.Aggressive, era.Mature}:  `High civic trust of {{f3 .Trust}} makes long-term commitments credible; politics argues over refinements rather than direction.`,

	{scenario.WorstCase, era.Dawn}:    `Trust has already {{fellrose .DTrust}} to {{f3 .Trust}}. Institutions lose the benefit of the doubt.`,
	{scenario.WorstCase, era.Diverge}: `Civic trust of {{f3 .Trust}} leaves governments unable to act collectively. Populist cycles replace policy.`,
	{scenario.WorstCase, era.Legacy}:  `Trust at {{f3 .Trust}} marks a politics of enclaves: communities look after their own and little else.`,
}

// #endregion politics

// #region ai
var aiTable = table{
	{scenario.StatusQuo, era.Dawn}:    `AI influence is {{f3 .AI}} against civic trust of {{f3 .Trust}}, a gap of {{signed .Gap}}. With {{charter .Charter}}, deployment decisions stay with vendors.`,
	{scenario.StatusQuo, era.Diverge}: `AI influence has {{fellrose .DAI}} to {{f3 .AI}}. At a governance gap of {{signed .Gap}}, {{gapword .Gap}}.`,
	{scenario.StatusQuo, era.Mature}:  `Automated systems mediate most public services with influence of {{f3 .AI}}. The governance gap of {{signed .Gap}} means {{gapword .Gap}}.`,
	{scenario.StatusQuo, era.Legacy}:  `AI influence of {{f3 .AI}} is embedded everywhere; with a gap of {{signed .Gap}}, {{gapword .Gap}}.`,

	{scenario.Aggressive, era.Dawn}:    `With {{charter .Charter}}, the terms are set before AI influence (now {{f3 .AI}}) becomes entrenched. The governance gap is {{signed .Gap}}.`,
	{scenario.Aggressive, era.Diverge}: `AI influence has reached {{f3 .AI}} under {{charter .Charter}}. With trust at {{f3 .Trust}} the gap is {{signed .Gap}}: {{gapword .Gap}}.`,
	{scenario.Aggressive, era.Mature}:  `Audited AI at {{f3 .AI}} influence runs much of the grid and public services. A governance gap of {{signed .Gap}} shows {{gapword .Gap}}.`,

	{scenario.WorstCase, era.Diverge}: `AI influence of {{f3 .AI}} is concentrated in a few firms; with trust at {{f3 .Trust}} the gap is {{signed .Gap}} and {{gapword .Gap}}.`,
	{scenario.WorstCase, era.Mature}:  `Unaccountable automation at {{f3 .AI}} shapes information, work and policing. The governance gap of {{signed .Gap}} is the defining failure of the era.`,
}

// #endregion ai

// #region next
var nextTable = table{
	{scenario.StatusQuo, era.Dawn}:    `Watch the next five years: without new levers, the {{pct .EmissionsPct}} emissions change and trust of {{f3 .Trust}} set the trajectory by default.`,
	{scenario.StatusQuo, era.Diverge}: `The window for cheap action is closing. A civic dividend and an AI charter would each address a gap this path leaves open.`,
	{scenario.StatusQuo, era.Mature}:  `Adaptation is now urgent regardless of mitigation. Resilience of {{f3 .Resilience}} is the number to move first.`,
	{scenario.StatusQuo, era.Legacy}:  `Compare this legacy with the reform paths at the same year to see what a different {{.BaselineYear}} decision would have bought.`,

	{scenario.Moderate, era.Dawn}:    `Protect the reforms through their first budget cycles; results will not be visible before the diverge era.`,
	{scenario.Moderate, era.Diverge}: `Consider raising climate capex above {{share .Capex}}: emissions at {{f1 .Emissions}} Gt CO2e are falling, but not at the pace resilience of {{f3 .Resilience}} requires.`,
	{scenario.Moderate, era.Mature}:  `The remaining gains lie in governance: a governance gap of {{signed .Gap}} is where moderate reform is weakest.`,

	{scenario.Aggressive, era.Dawn}:    `Hold the course through the disruption years; trust of {{f3 .Trust}} needs visible dividend payments to hold.`,
	{scenario.Aggressive, era.Diverge}: `Lock in gains: index the {{share .Dividend}} dividend and keep {{charter .Charter}} ahead of AI influence, which is {{f3 .AI}} and rising.`,
	{scenario.Aggressive, era.Mature}:  `Shift attention from emissions ({{f1 .Emissions}} Gt CO2e) to maintaining resilience of {{f3 .Resilience}} and the institutions behind a score of {{.Score}}/100.`,
	{scenario.Aggressive, era.Legacy}:  `Document what worked. A score of {{.Score}}/100 ({{.Rating}}) is the argument for the next generation's commitments.`,

	{scenario.WorstCase, era.Dawn}:    `Reverse course early: restoring trust of {{f3 .Trust}} is cheaper now than at any later point.`,
	{scenario.WorstCase, era.Diverge}: `Triage resilience first; at {{f3 .Resilience}} communities cannot absorb another decade of shocks.`,
	{scenario.WorstCase, era.Mature}:  `Recovery requires rebuilding trust from {{f3 .Trust}} before any large program can succeed.`,
	{scenario.WorstCase, era.Legacy}:  `Study this path as a warning: every metric here started at the same {{.BaselineYear}} baseline as the reform paths.`,
}

// #endregion next
