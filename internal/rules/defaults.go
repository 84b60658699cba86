package rules

// Tracking parameters removed from every URL regardless of host.
var defaultGlobalActions = []Action{
	// campaign tagging
	StripQueryParamPrefix("utm_"),

	// Facebook
	StripQueryParam("fbclid"),
	StripQueryParam("fb_action_ids"),
	StripQueryParam("fb_action_types"),
	StripQueryParam("fb_source"),
	StripQueryParam("fb_ref"),

	// Google Ads / DoubleClick
	StripQueryParam("gclid"),
	StripQueryParam("gclsrc"),
	StripQueryParam("dclid"),

	// Microsoft Advertising
	StripQueryParam("msclkid"),

	// Yandex
	StripQueryParam("yclid"),

	// Mailchimp
	StripQueryParam("mc_cid"),
	StripQueryParam("mc_eid"),

	// HubSpot
	StripQueryParam("_hsenc"),
	StripQueryParam("_hsmi"),

	// Marketo, Vero
	StripQueryParam("mkt_tok"),
	StripQueryParam("vero_id"),
}

var defaultDomainRules = []DomainRule{
	NewDomainRule("youtube.com",
		StripQueryParam("feature"),
		StripQueryParam("si"),
		StripQueryParam("app"),
		StripQueryParam("pp"),
	),
	NewDomainRule("youtu.be",
		StripQueryParam("si"),
		StripQueryParam("feature"),
	),
	NewDomainRule("open.spotify.com",
		StripQueryParam("si"),
		StripQueryParam("context"),
	),
	// Product pages carry the whole search session in the query and
	// a /ref= breadcrumb in the path.
	NewDomainRule("amazon.com",
		StripPathFromMarker("/ref="),
		DropAllQueryParams(),
	),
	NewDomainRule("google.com",
		StripQueryParam("gs_lcrp"),
		StripQueryParam("gs_lp"),
		StripQueryParam("sca_esv"),
		StripQueryParam("ei"),
		StripQueryParam("iflsig"),
		StripQueryParam("sclient"),
		StripQueryParam("rlz"),
		StripQueryParam("bih"),
		StripQueryParam("biw"),
		StripQueryParam("dpr"),
		StripQueryParam("ved"),
		StripQueryParam("sa"),
		StripQueryParam("fbs"),
		StripQueryParam("source"),
		StripQueryParam("sourceid"),
		StripQueryParam("aqs"),
		StripQueryParam("oq"),
	),
	NewDomainRule("instagram.com",
		StripQueryParam("igsh"),
		StripQueryParam("igshid"),
	),
	NewDomainRule("x.com",
		StripQueryParam("s"),
		StripQueryParam("t"),
		StripQueryParam("ref_src"),
		StripQueryParam("ref_url"),
	),
	NewDomainRule("twitter.com",
		StripQueryParam("s"),
		StripQueryParam("t"),
		StripQueryParam("ref_src"),
		StripQueryParam("ref_url"),
	),
	NewDomainRule("walmart.com",
		StripQueryParam("from"),
		StripQueryParam("sid"),
		StripQueryParam("athbdg"),
		StripQueryParam("athancid"),
		StripQueryParam("athcpid"),
	),
	NewDomainRule("tiktok.com",
		StripQueryParam("is_copy_url"),
		StripQueryParam("is_from_webapp"),
		StripQueryParam("_r"),
	),
}
