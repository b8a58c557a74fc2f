package validate

import (
	"testing"

	"tradelog/internal/models"
)

func issuePaths(issues Issues) map[string]bool {
	paths := make(map[string]bool, len(issues))
	for _, issue := range issues {
		paths[issue.Path] = true
	}
	return paths
}

func TestTradeIdeaValidation(t *testing.T) {
	idea := &models.TradeIdeaCreate{
		Symbol:   "AAPL",
		Setup:    "breakout",
		Rating:   4,
		EntryMin: 180,
	}
	if issues := TradeIdea(idea); !issues.Valid() {
		t.Errorf("valid idea rejected: %v", issues)
	}

	empty := TradeIdea(&models.TradeIdeaCreate{})
	paths := issuePaths(empty)
	for _, want := range []string{"symbol", "setup", "rating", "entryMin"} {
		if !paths[want] {
			t.Errorf("missing issue at %s: %v", want, empty)
		}
	}

	low := 170.0
	idea.EntryMax = &low
	paths = issuePaths(TradeIdea(idea))
	if !paths["entryMax"] {
		t.Error("entry max below entry min should be rejected")
	}
}

func TestExecutionValidation(t *testing.T) {
	exec := &models.ExecutionCreate{
		TradeID:     "t1",
		ScalePlanID: "p1",
		Price:       100,
		Qty:         50,
		Side:        models.SideBuy,
	}
	if issues := Execution(exec); !issues.Valid() {
		t.Errorf("valid execution rejected: %v", issues)
	}

	exec.Price = 0
	exec.Commission = -1
	exec.Side = "hold"
	paths := issuePaths(Execution(exec))
	for _, want := range []string{"price", "commission", "side"} {
		if !paths[want] {
			t.Errorf("missing issue at %s", want)
		}
	}
}

func TestAnnotationValidation(t *testing.T) {
	a := &models.AnnotationCreate{
		TradeID: "t1",
		Type:    models.AnnotationCatalyst,
		Content: "earnings beat",
	}
	if issues := Annotation(a); !issues.Valid() {
		t.Errorf("valid annotation rejected: %v", issues)
	}

	paths := issuePaths(Annotation(&models.AnnotationCreate{}))
	for _, want := range []string{"tradeId", "content", "type"} {
		if !paths[want] {
			t.Errorf("missing issue at %s", want)
		}
	}
}

func TestScalePlanValidation(t *testing.T) {
	p := &models.ScalePlanCreate{
		Label:     "Target 1",
		PlanType:  models.PlanTarget,
		OrderType: models.OrderLimit,
		TradeType: models.Long,
		Qty:       50,
	}

	// Target plans need a target price.
	paths := issuePaths(ScalePlan(p))
	if !paths["targetPrice"] {
		t.Error("target plan without target price should be rejected")
	}

	price := 195.0
	p.TargetPrice = &price
	if issues := ScalePlan(p); !issues.Valid() {
		t.Errorf("valid plan rejected: %v", issues)
	}

	p.Label = ""
	p.Qty = 0
	paths = issuePaths(ScalePlan(p))
	if !paths["label"] || !paths["qty"] {
		t.Errorf("missing label/qty issues: %v", paths)
	}
}
