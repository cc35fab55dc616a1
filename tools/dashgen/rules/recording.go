package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "storefront-recording-rules",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "storefront-recording",
					Rules: []Rule{
						{
							Record: "storefront:http_requests:rate5m",
							Expr:   `sum(rate(storefront_http_requests_total[5m]))`,
						},
						{
							Record: "storefront:http_errors:rate5m",
							Expr:   `sum(rate(storefront_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "storefront:marketplace_requests:rate5m",
							Expr:   `sum(rate(storefront_marketplace_requests_total[5m]))`,
						},
						{
							Record: "storefront:marketplace_errors:rate5m",
							Expr:   `sum(rate(storefront_marketplace_requests_total{status=~"5..|error"}[5m]))`,
						},
						{
							Record: "storefront:ingestions:rate5m",
							Expr:   `sum(rate(storefront_ingestions_total[5m]))`,
						},
						{
							Record: "storefront:ingestion_failures:rate5m",
							Expr:   `sum(rate(storefront_ingestions_total{result="failed"}[5m]))`,
						},
					},
				},
			},
		},
	}
}

func ruleLabels() map[string]string {
	return map[string]string{
		"prometheus": "system-rules-prometheus",
	}
}
