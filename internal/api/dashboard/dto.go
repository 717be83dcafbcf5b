package dashboard

import "AgentDock/internal/entity"

type OverviewResponse struct {
	Profile      *entity.BusinessProfile `json:"profile"`
	Stats        *entity.Stats           `json:"stats"`
	Knowledge    *entity.Knowledge       `json:"knowledge"`
	Completeness int                     `json:"completeness"`
	JoinLink     string                  `json:"join_link,omitempty"`
	StartLink    string                  `json:"start_link,omitempty"`
	StartCode    string                  `json:"start_code,omitempty"`
}

type StatsResponse struct {
	Stats *entity.Stats `json:"stats"`
}

type KnowledgeRequest struct {
	RawText string `json:"raw_text" validate:"max=100000"`
}

type FaqResponse struct {
	Faqs []entity.Faq `json:"faqs"`
}

type CoachingResponse struct {
	Insights []entity.CoachingInsight `json:"insights"`
}

type ResetRequest struct {
	WipeProfile bool `json:"wipe_profile"`
}
