// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

// TableRow is the flattened, display-oriented projection of a Company used
// by listings, filters, comparisons and the quiz. Field names follow the
// table columns rather than the record sections they come from.
type TableRow struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	HostingType *HostingType `json:"hostingType"`
	WebsiteURL  *string      `json:"websiteUrl"`

	// Essential
	MonthlyPrice           *float64 `json:"monthlyPrice"`
	RenewalPrice           *float64 `json:"renewalPrice"`
	OverallRating          *float64 `json:"overallRating"`
	UptimeGuarantee        *float64 `json:"uptimeGuarantee"`
	FreeSSL                *bool    `json:"freeSsl"`
	FreeDomain             *bool    `json:"freeDomain"`
	FreeMigration          *bool    `json:"freeMigration"`
	TrustpilotRating       *float64 `json:"trustpilotRating"`
	TrustpilotReviewsCount *float64 `json:"trustpilotReviewsCount"`

	// Technical
	StorageGB          *Quota       `json:"storageGb"`
	StorageType        *StorageType `json:"storageType"`
	BandwidthGB        *Quota       `json:"bandwidthGb"`
	PHPVersions        []string     `json:"phpVersions"`
	SSHAccess          *bool        `json:"sshAccess"`
	GitDeployment      *bool        `json:"gitDeployment"`
	StagingEnvironment *bool        `json:"stagingEnvironment"`
	NodejsSupport      *bool        `json:"nodejsSupport"`
	PythonSupport      *bool        `json:"pythonSupport"`
	RubySupport        *bool        `json:"rubySupport"`
	MaxWebsites        *Quota       `json:"maxWebsites"`
	MaxDatabases       *Quota       `json:"maxDatabases"`
	CronJobs           *bool        `json:"cronJobs"`
	RedisAvailable     *bool        `json:"redisAvailable"`

	// WordPress
	WordPressOptimized   *bool `json:"wordpressOptimized"`
	WordPressAutoInstall *bool `json:"wordpressAutoInstall"`
	WordPressAutoUpdates *bool `json:"wordpressAutoUpdates"`
	WordPressStaging     *bool `json:"wordpressStaging"`
	WooCommerceOptimized *bool `json:"woocommerceOptimized"`
	LiteSpeedCache       *bool `json:"litespeedCache"`
	ObjectCaching        *bool `json:"objectCaching"`
	WPMultisite          *bool `json:"wpMultisite"`
	WPCLIAccess          *bool `json:"wpCliAccess"`

	// Security
	DDoSProtection       *bool    `json:"ddosProtection"`
	DDoSProtectionLevel  *string  `json:"ddosProtectionLevel"`
	MalwareScanning      *bool    `json:"malwareScanning"`
	MalwareRemoval       *bool    `json:"malwareRemoval"`
	FirewallIncluded     *bool    `json:"firewallIncluded"`
	BackupFrequency      *string  `json:"backupFrequency"`
	BackupRetentionDays  *float64 `json:"backupRetentionDays"`
	BackupRestoreFee     *float64 `json:"backupRestoreFee"`
	OnDemandBackup       *bool    `json:"onDemandBackup"`
	TwoFactorAuth        *bool    `json:"twoFactorAuth"`
	WildcardSSL          *bool    `json:"wildcardSsl"`
	DedicatedIPAvailable *bool    `json:"dedicatedIpAvailable"`

	// Support
	SupportChannels       []string `json:"supportChannels"`
	LiveChatAvailable     *bool    `json:"liveChatAvailable"`
	LiveChatHours         *string  `json:"liveChatHours"`
	PhoneSupportAvailable *bool    `json:"phoneSupportAvailable"`
	PhoneSupportHours     *string  `json:"phoneSupportHours"`
	TicketSupport         *bool    `json:"ticketSupport"`
	PrioritySupport       *bool    `json:"prioritySupport"`
	SupportLanguages      []string `json:"supportLanguages"`
	KnowledgeBaseQuality  *float64 `json:"knowledgeBaseQuality"`
	AvgSupportWaitMinutes *float64 `json:"avgSupportWaitMinutes"`

	// Pricing detail
	RenewalMarkupPercent    *float64 `json:"renewalMarkupPercent"`
	FirstYearCost           *float64 `json:"firstYearCost"`
	SecondYearCost          *float64 `json:"secondYearCost"`
	MoneyBackDays           *float64 `json:"moneyBackDays"`
	SetupFee                *float64 `json:"setupFee"`
	MonthlyBillingAvailable *bool    `json:"monthlyBillingAvailable"`
	MinimumContractMonths   *float64 `json:"minimumContractMonths"`

	// Email
	EmailAccountsIncluded *bool    `json:"emailAccountsIncluded"`
	EmailAccountLimit     *Quota   `json:"emailAccountLimit"`
	MailboxSizeGB         *float64 `json:"mailboxSizeGb"`
	WebmailAccess         *bool    `json:"webmailAccess"`
	SpamFilter            *bool    `json:"spamFilter"`
	EmailForwarding       *bool    `json:"emailForwarding"`

	// Compliance
	GDPRCompliance  *bool    `json:"gdprCompliance"`
	PCICompliance   *bool    `json:"pciCompliance"`
	HIPAACompliance *bool    `json:"hipaaCompliance"`
	DataCenterCerts []string `json:"dataCenterCerts"`

	// Platform support
	DrupalSupport     *bool `json:"drupalSupport"`
	JoomlaSupport     *bool `json:"joomlaSupport"`
	MagentoSupport    *bool `json:"magentoSupport"`
	LaravelSupport    *bool `json:"laravelSupport"`
	DjangoSupport     *bool `json:"djangoSupport"`
	NextjsSupport     *bool `json:"nextjsSupport"`
	RailsSupport      *bool `json:"railsSupport"`
	StaticSiteSupport *bool `json:"staticSiteSupport"`

	// Performance
	CDNIncluded          *bool    `json:"cdnIncluded"`
	CDNProvider          *string  `json:"cdnProvider"`
	ServerLocations      []string `json:"serverLocations"`
	ServerLocationCount  *float64 `json:"serverLocationCount"`
	ChooseServerLocation *bool    `json:"chooseServerLocation"`
	HTTP2Support         *bool    `json:"http2Support"`
	BrotliCompression    *bool    `json:"brotliCompression"`
	UptimeSLACredit      *bool    `json:"uptimeSlaCredit"`

	// Ratings
	ValueForMoney      *float64 `json:"valueForMoney"`
	PerformanceRating  *float64 `json:"performanceRating"`
	SupportQuality     *float64 `json:"supportQuality"`
	SecurityRating     *float64 `json:"securityRating"`
	FeaturesRating     *float64 `json:"featuresRating"`
	EaseOfUse          *float64 `json:"easeOfUse"`
	TransparencyRating *float64 `json:"transparencyRating"`

	// Suitability
	SuitabilityBlogger    *float64 `json:"suitabilityBlogger"`
	SuitabilityEcommerce  *float64 `json:"suitabilityEcommerce"`
	SuitabilityAgency     *float64 `json:"suitabilityAgency"`
	SuitabilityDeveloper  *float64 `json:"suitabilityDeveloper"`
	SuitabilityBeginner   *float64 `json:"suitabilityBeginner"`
	SuitabilityEnterprise *float64 `json:"suitabilityEnterprise"`

	// Migration
	MigrationWebsitesLimit  *float64 `json:"migrationWebsitesLimit"`
	MigrationTurnaroundDays *float64 `json:"migrationTurnaroundDays"`
	PaidMigrationCost       *float64 `json:"paidMigrationCost"`
	MigrationQuality        *float64 `json:"migrationQuality"`

	// Control panel
	CPanelIncluded         *bool   `json:"cpanelIncluded"`
	ControlPanelName       *string `json:"controlPanelName"`
	Softaculous            *bool   `json:"softaculous"`
	WebsiteBuilderIncluded *bool   `json:"websiteBuilderIncluded"`
	WebsiteBuilderName     *string `json:"websiteBuilderName"`

	// Policies
	BandwidthOveragePolicy     *string `json:"bandwidthOveragePolicy"`
	StorageOveragePolicy       *string `json:"storageOveragePolicy"`
	AdultContentAllowed        *bool   `json:"adultContentAllowed"`
	GamblingSitesAllowed       *bool   `json:"gamblingSitesAllowed"`
	CryptocurrencySitesAllowed *bool   `json:"cryptocurrencySitesAllowed"`
	ResellerHostingAvailable   *bool   `json:"resellerHostingAvailable"`
	WhiteLabelAvailable        *bool   `json:"whiteLabelAvailable"`
	APIAccess                  *bool   `json:"apiAccess"`

	// Basic info
	YearFounded              *float64 `json:"yearFounded"`
	HeadquartersCountry      *string  `json:"headquartersCountry"`
	ParentCompany            *string  `json:"parentCompany"`
	GreenHosting             *bool    `json:"greenHosting"`
	InstantAccountActivation *bool    `json:"instantAccountActivation"`

	// Additional pricing
	FreeDomainDurationMonths *float64 `json:"freeDomainDurationMonths"`
	MoneyBackExclusions      *string  `json:"moneyBackExclusions"`
	AcceptedPaymentMethods   []string `json:"acceptedPaymentMethods"`
	AutoRenewalDefault       *bool    `json:"autoRenewalDefault"`
	DomainPrivacyIncluded    *bool    `json:"domainPrivacyIncluded"`
	DomainPrivacyCostYearly  *float64 `json:"domainPrivacyCostYearly"`

	// Additional technical
	InodeLimit            *Quota   `json:"inodeLimit"`
	MaxDatabaseSizeGB     *float64 `json:"maxDatabaseSizeGb"`
	MaxFileUploadSizeMB   *float64 `json:"maxFileUploadSizeMb"`
	PHPVersionSwitching   *bool    `json:"phpVersionSwitching"`
	SSHAccessTierRequired *string  `json:"sshAccessTierRequired"`
	StagingIncludedTier   *string  `json:"stagingIncludedTier"`
	SubdomainsLimit       *Quota   `json:"subdomainsLimit"`
	FTPAccountsLimit      *Quota   `json:"ftpAccountsLimit"`
	DatabaseType          *string  `json:"databaseType"`
	ElasticsearchSupport  *bool    `json:"elasticsearchSupport"`
	ImageOptimization     *bool    `json:"imageOptimization"`

	// Additional security
	SSLProvider            *string  `json:"sslProvider"`
	DedicatedIPCostMonthly *float64 `json:"dedicatedIpCostMonthly"`
	MalwareRemovalCost     *float64 `json:"malwareRemovalCost"`
	DownloadableBackups    *bool    `json:"downloadableBackups"`

	// Additional support
	PhoneSupportCountries []string `json:"phoneSupportCountries"`
	PrioritySupportCost   *float64 `json:"prioritySupportCost"`
	CommunityForumActive  *bool    `json:"communityForumActive"`
	SupportOutsourced     *bool    `json:"supportOutsourced"`

	// Additional WordPress
	ObjectCacheType           *string `json:"objectCacheType"`
	ManagedWordPressAvailable *bool   `json:"managedWordpressAvailable"`

	// Managed WordPress
	WPPricingModel         *PricingModel `json:"wpPricingModel"`
	MonthlyVisitLimit      *Quota        `json:"monthlyVisitLimit"`
	VisitOverageCost       *float64      `json:"visitOverageCost"`
	PHPWorkerLimit         *float64      `json:"phpWorkerLimit"`
	PluginRestrictions     []string      `json:"pluginRestrictions"`
	DevEnvironmentIncluded *bool         `json:"devEnvironmentIncluded"`
	DevEnvironmentName     *string       `json:"devEnvironmentName"`

	// Additional policies
	BandwidthOverageCost    *float64 `json:"bandwidthOverageCost"`
	AccountSuspensionPolicy *string  `json:"accountSuspensionPolicy"`
	ResourceAbuseDefinition *string  `json:"resourceAbuseDefinition"`
	FileHostingAllowed      *bool    `json:"fileHostingAllowed"`
	ProxyVPNAllowed         *bool    `json:"proxyVpnAllowed"`

	// Business and affiliate
	AffiliateProgram          *bool   `json:"affiliateProgram"`
	AffiliateCommissionType   *string `json:"affiliateCommissionType"`
	AffiliateCommissionAmount *string `json:"affiliateCommissionAmount"`

	// External ratings
	G2Rating                   *float64 `json:"g2Rating"`
	BetterBusinessBureauRating *string  `json:"betterBusinessBureauRating"`

	// Editorial
	KnownIssues               *string `json:"knownIssues"`
	BestFor                   *string `json:"bestFor"`
	AvoidIf                   *string `json:"avoidIf"`
	CompetitorComparisonNotes *string `json:"competitorComparisonNotes"`

	// Comparison data
	UniqueSellingPoint   *string  `json:"uniqueSellingPoint"`
	PrimaryCompetitors   []string `json:"primaryCompetitors"`
	BestAlternativeTo    *string  `json:"bestAlternativeTo"`
	IdealCustomerProfile *string  `json:"idealCustomerProfile"`

	// Regional targeting
	BestForCountries          []string `json:"bestForCountries"`
	LocalCurrencyBilling      []string `json:"localCurrencyBilling"`
	LocalSupportLanguages     []string `json:"localSupportLanguages"`
	DataSovereigntyCompliance []string `json:"dataSovereigntyCompliance"`

	// Additional platforms
	PrestashopSupport    *bool `json:"prestashopSupport"`
	GhostSupport         *bool `json:"ghostSupport"`
	ShopifyMigration     *bool `json:"shopifyMigration"`
	WixMigration         *bool `json:"wixMigration"`
	SquarespaceMigration *bool `json:"squarespaceMigration"`
	WebflowExport        *bool `json:"webflowExport"`
}
