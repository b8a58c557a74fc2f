package validate

import "tradelog/internal/models"

// TradeIdea validates a trade-idea submission.
func TradeIdea(idea *models.TradeIdeaCreate) Issues {
	var issues Issues
	if idea.Symbol == "" {
		issues = append(issues, Issue{Path: "symbol", Message: "symbol is required"})
	}
	if idea.Setup == "" {
		issues = append(issues, Issue{Path: "setup", Message: "setup is required"})
	}
	if idea.Rating < 1 {
		issues = append(issues, Issue{Path: "rating", Message: "rating is required"})
	}
	if idea.EntryMin <= 0 {
		issues = append(issues, Issue{Path: "entryMin", Message: "entry min is required"})
	}
	if idea.EntryMax != nil && *idea.EntryMax < idea.EntryMin {
		issues = append(issues, Issue{Path: "entryMax", Message: "entry max must not be below entry min"})
	}
	return issues
}

// Execution validates a fill submission.
func Execution(exec *models.ExecutionCreate) Issues {
	var issues Issues
	if exec.ScalePlanID == "" {
		issues = append(issues, Issue{Path: "scalePlanId", Message: "scale plan is required"})
	}
	if exec.Price <= 0 {
		issues = append(issues, Issue{Path: "price", Message: "price is required"})
	}
	if exec.Qty <= 0 {
		issues = append(issues, Issue{Path: "qty", Message: "quantity is required"})
	}
	if exec.Commission < 0 {
		issues = append(issues, Issue{Path: "commission", Message: "commission must not be negative"})
	}
	if exec.Side != models.SideBuy && exec.Side != models.SideSell {
		issues = append(issues, Issue{Path: "side", Message: "side must be buy or sell"})
	}
	return issues
}

// Annotation validates a note or catalyst entry.
func Annotation(a *models.AnnotationCreate) Issues {
	var issues Issues
	if a.TradeID == "" {
		issues = append(issues, Issue{Path: "tradeId", Message: "trade is required"})
	}
	if a.Content == "" {
		issues = append(issues, Issue{Path: "content", Message: "content is required"})
	}
	if a.Type != models.AnnotationNote && a.Type != models.AnnotationCatalyst {
		issues = append(issues, Issue{Path: "type", Message: "type must be note or catalyst"})
	}
	return issues
}

// ScalePlan validates a standalone scale-plan submission.
func ScalePlan(p *models.ScalePlanCreate) Issues {
	var issues Issues
	if p.Label == "" {
		issues = append(issues, Issue{Path: "label", Message: "label is required"})
	}
	if p.Qty <= 0 {
		issues = append(issues, Issue{Path: "qty", Message: "qty is required"})
	}
	if p.PlanType == models.PlanTarget && p.TargetPrice == nil {
		issues = append(issues, Issue{Path: "targetPrice", Message: "target price is required"})
	}
	return issues
}
