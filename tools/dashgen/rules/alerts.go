package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// storefront operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name:   "storefront-alerts",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "storefront-alerts",
					Rules: []Rule{
						{
							Alert:  "StorefrontDown",
							Expr:   `absent(up{job="storefront"})`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Storefront API is down",
								"description": "The storefront job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert:  "StorefrontReadinessDown",
							Expr:   `storefront_readyz_up == 0`,
							For:    "2m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Storefront cannot reach its database",
								"description": "The readiness check has been reporting not-ready for more than 2 minutes.",
							},
						},
						{
							Alert:  "StorefrontHighErrorRate",
							Expr:   `storefront:http_errors:rate5m / storefront:http_requests:rate5m > 0.05`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the storefront API",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert:  "StorefrontMarketplaceErrors",
							Expr:   `storefront:marketplace_errors:rate5m / storefront:marketplace_requests:rate5m > 0.2`,
							For:    "10m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "MercadoLibre API calls are failing",
								"description": "More than 20% of marketplace calls returned 5xx or never completed over the last 10 minutes.",
							},
						},
						{
							Alert:  "StorefrontTokenRefreshFailing",
							Expr:   `increase(storefront_token_refreshes_total{result="failed"}[15m]) > 0`,
							For:    "0m",
							Labels: severity("critical"),
							Annotations: map[string]string{
								"summary":     "Marketplace token refresh failed",
								"description": "The OAuth refresh was rejected or unreachable. Item fetches fail once the access token expires.",
							},
						},
						{
							Alert:  "StorefrontKeepaliveStale",
							Expr:   `storefront_keepalive_last_success_timestamp > 0 and time() - storefront_keepalive_last_success_timestamp > 14400`,
							For:    "5m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Token keepalive has not succeeded in 4 hours",
								"description": "The scheduled refresh keeps the 6 hour access token alive. Check the keepalive logs.",
							},
						},
						{
							Alert:  "StorefrontIngestionFailures",
							Expr:   `storefront:ingestion_failures:rate5m > 0`,
							For:    "15m",
							Labels: severity("warning"),
							Annotations: map[string]string{
								"summary":     "Product ingestion is failing",
								"description": "Add-product requests have been failing for more than 15 minutes.",
							},
						},
					},
				},
			},
		},
	}
}

func severity(level string) map[string]string {
	return map[string]string{"severity": level}
}
