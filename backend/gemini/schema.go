package gemini

// Schema is the subset of the Gemini structured-output schema language
// needed for roadmap generation.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
	Enum       []string           `json:"enum,omitempty"`
}

// roadmapSchema enforces the exact roadmap shape on the model output.
var roadmapSchema = &Schema{
	Type: "OBJECT",
	Properties: map[string]*Schema{
		"title":                {Type: "STRING"},
		"overview":             {Type: "STRING"},
		"currentLevelEstimate": {Type: "STRING"},
		"timelineEstimate":     {Type: "STRING"},
		"phases": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"name":        {Type: "STRING"},
					"duration":    {Type: "STRING"},
					"description": {Type: "STRING"},
				},
				Required: []string{"name", "duration", "description"},
			},
		},
		"dailyPlans": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"day":   {Type: "INTEGER"},
					"title": {Type: "STRING"},
					"focus": {Type: "STRING"},
					"tasks": {
						Type: "ARRAY",
						Items: &Schema{
							Type: "OBJECT",
							Properties: map[string]*Schema{
								"id":          {Type: "STRING"},
								"description": {Type: "STRING"},
								"completed":   {Type: "BOOLEAN"},
							},
							Required: []string{"id", "description", "completed"},
						},
					},
					"resources": {
						Type: "ARRAY",
						Items: &Schema{
							Type: "OBJECT",
							Properties: map[string]*Schema{
								"title": {Type: "STRING"},
								"url":   {Type: "STRING"},
								"type":  {Type: "STRING", Enum: []string{"article", "video", "course", "tool"}},
							},
							Required: []string{"title", "url", "type"},
						},
					},
				},
				Required: []string{"day", "title", "focus", "tasks", "resources"},
			},
		},
		"weeklySummaries": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"week":       {Type: "INTEGER"},
					"theme":      {Type: "STRING"},
					"objectives": {Type: "ARRAY", Items: &Schema{Type: "STRING"}},
					"checkpoint": {Type: "STRING"},
				},
				Required: []string{"week", "theme", "objectives", "checkpoint"},
			},
		},
		"predictedChallenges": {
			Type: "ARRAY",
			Items: &Schema{
				Type: "OBJECT",
				Properties: map[string]*Schema{
					"problem":  {Type: "STRING"},
					"solution": {Type: "STRING"},
				},
				Required: []string{"problem", "solution"},
			},
		},
	},
	Required: []string{
		"title", "overview", "currentLevelEstimate", "timelineEstimate",
		"phases", "dailyPlans", "weeklySummaries", "predictedChallenges",
	},
}
