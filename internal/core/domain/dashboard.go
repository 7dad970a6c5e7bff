package domain

// ChartSeries - данные для графика на дашборде агента.
type ChartSeries struct {
	Label  string    `json:"label"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// WeeklyInquiries - статический ряд обращений за неделю. Реальной статистики backend пока не отдает.
func WeeklyInquiries() ChartSeries {
	return ChartSeries{
		Label:  "Inquiries",
		Labels: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Data:   []float64{12, 19, 15, 25, 22, 30, 28},
	}
}
