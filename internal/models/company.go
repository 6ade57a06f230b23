// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package models

// Company is a provider record as curated in data/companies/{id}.json.
//
// Every field is optional: nil means the value was never collected, not
// that the feature is absent. Sections missing from the file decode to
// their zero value, which leaves every field inside them nil.
type Company struct {
	BasicInfo           BasicInfo           `json:"basicInfo"`
	Pricing             Pricing             `json:"pricing"`
	TechnicalSpecs      TechnicalSpecs      `json:"technicalSpecs"`
	ServerPerformance   ServerPerformance   `json:"serverPerformance"`
	SecuritySSL         SecuritySSL         `json:"securitySsl"`
	Compliance          Compliance          `json:"compliance"`
	Support             Support             `json:"support"`
	WordPressFeatures   WordPressFeatures   `json:"wordpressFeatures"`
	ManagedWordPress    ManagedWordPress    `json:"managedWordPress"`
	Migration           Migration           `json:"migration"`
	ControlPanel        ControlPanel        `json:"controlPanel"`
	Email               Email               `json:"email"`
	PoliciesOverages    PoliciesOverages    `json:"policiesOverages"`
	ContentRestrictions ContentRestrictions `json:"contentRestrictions"`
	Business            Business            `json:"business"`
	Reputation          Reputation          `json:"reputation"`
	Editorial           Editorial           `json:"editorial"`
	Ratings             Ratings             `json:"ratings"`
	UseCases            UseCases            `json:"useCases"`
	PlatformSupport     PlatformSupport     `json:"platformSupport"`
	PricingCalculated   PricingCalculated   `json:"pricingCalculated"`
	ComparisonData      ComparisonData      `json:"comparisonData"`
	RegionalTargeting   RegionalTargeting   `json:"regionalTargeting"`
	FAQContent          FAQContent          `json:"faqContent"`
	AdditionalPlatforms AdditionalPlatforms `json:"additionalPlatforms"`
}

type BasicInfo struct {
	CompanyName              string       `json:"companyName"`
	WebsiteURL               string       `json:"websiteUrl"`
	YearFounded              *float64     `json:"yearFounded"`
	HeadquartersCountry      *string      `json:"headquartersCountry"`
	ParentCompany            *string      `json:"parentCompany"`
	DataLastUpdated          string       `json:"dataLastUpdated"`
	Notes                    *string      `json:"notes"`
	GreenHosting             *bool        `json:"greenHosting"`
	InstantAccountActivation *bool        `json:"instantAccountActivation"`
	HostingType              *HostingType `json:"hostingType"`
}

type Pricing struct {
	SharedHostingMonthlyPromo      *float64 `json:"sharedHostingMonthlyPromo"`
	SharedHostingMonthlyRenewal    *float64 `json:"sharedHostingMonthlyRenewal"`
	VPSMonthlyLowest               *float64 `json:"vpsMonthlyLowest"`
	VPSMonthlyRenewal              *float64 `json:"vpsMonthlyRenewal"`
	DedicatedMonthlyLowest         *float64 `json:"dedicatedMonthlyLowest"`
	DedicatedMonthlyRenewal        *float64 `json:"dedicatedMonthlyRenewal"`
	WordPressHostingMonthlyPromo   *float64 `json:"wordpressHostingMonthlyPromo"`
	WordPressHostingMonthlyRenewal *float64 `json:"wordpressHostingMonthlyRenewal"`
	CloudHostingMonthlyLowest      *float64 `json:"cloudHostingMonthlyLowest"`
	FreeDomainIncluded             *bool    `json:"freeDomainIncluded"`
	FreeDomainDurationMonths       *float64 `json:"freeDomainDurationMonths"`
	DomainTransferLockPeriodDays   *float64 `json:"domainTransferLockPeriodDays"`
	SetupFee                       *float64 `json:"setupFee"`
	MoneyBackGuaranteeDays         *float64 `json:"moneyBackGuaranteeDays"`
	MoneyBackExclusions            *string  `json:"moneyBackExclusions"`
	AcceptedPaymentMethods         []string `json:"acceptedPaymentMethods"`
	AutoRenewalDefault             *bool    `json:"autoRenewalDefault"`
	MinimumContractMonths          *float64 `json:"minimumContractMonths"`
	MonthlyBillingAvailable        *bool    `json:"monthlyBillingAvailable"`
	DomainPrivacyIncluded          *bool    `json:"domainPrivacyIncluded"`
	DomainPrivacyCostYearly        *float64 `json:"domainPrivacyCostYearly"`
}

type TechnicalSpecs struct {
	StorageGB             *Quota       `json:"storageGb"`
	StorageType           *StorageType `json:"storageType"`
	BandwidthGB           *Quota       `json:"bandwidthGb"`
	InodeLimit            *Quota       `json:"inodeLimit"`
	MaxWebsitesAllowed    *Quota       `json:"maxWebsitesAllowed"`
	MaxDatabases          *Quota       `json:"maxDatabases"`
	MaxDatabaseSizeGB     *float64     `json:"maxDatabaseSizeGb"`
	MaxFileUploadSizeMB   *float64     `json:"maxFileUploadSizeMb"`
	PHPVersionsAvailable  []string     `json:"phpVersionsAvailable"`
	PHPVersionSwitching   *bool        `json:"phpVersionSwitching"`
	NodejsSupport         *bool        `json:"nodejsSupport"`
	PythonSupport         *bool        `json:"pythonSupport"`
	RubySupport           *bool        `json:"rubySupport"`
	SSHAccess             *bool        `json:"sshAccess"`
	SSHAccessTierRequired *string      `json:"sshAccessTierRequired"`
	GitDeployment         *bool        `json:"gitDeployment"`
	WPCLIAccess           *bool        `json:"wpCliAccess"`
	CronJobsAllowed       *bool        `json:"cronJobsAllowed"`
	StagingEnvironment    *bool        `json:"stagingEnvironment"`
	StagingIncludedTier   *string      `json:"stagingIncludedTier"`
	SubdomainsLimit       *Quota       `json:"subdomainsLimit"`
	FTPAccountsLimit      *Quota       `json:"ftpAccountsLimit"`
	DatabaseType          *string      `json:"databaseType"`
	RedisAvailable        *bool        `json:"redisAvailable"`
	ElasticsearchSupport  *bool        `json:"elasticsearchSupport"`
	ImageOptimization     *bool        `json:"imageOptimization"`
}

type ServerPerformance struct {
	ServerLocations            []string `json:"serverLocations"`
	ServerLocationOptionsCount *float64 `json:"serverLocationOptionsCount"`
	ChooseServerLocation       *bool    `json:"chooseServerLocation"`
	CDNIncluded                *bool    `json:"cdnIncluded"`
	CDNProvider                *string  `json:"cdnProvider"`
	UptimeGuaranteePercent     *float64 `json:"uptimeGuaranteePercent"`
	UptimeSLACredit            *bool    `json:"uptimeSlaCredit"`
	DDoSProtection             *bool    `json:"ddosProtection"`
	DDoSProtectionLevel        *string  `json:"ddosProtectionLevel"`
	FirewallIncluded           *bool    `json:"firewallIncluded"`
	MalwareScanning            *bool    `json:"malwareScanning"`
	MalwareRemoval             *bool    `json:"malwareRemoval"`
	MalwareRemovalCost         *float64 `json:"malwareRemovalCost"`
	HTTP2Support               *bool    `json:"http2Support"`
	BrotliCompression          *bool    `json:"brotliCompression"`
}

type SecuritySSL struct {
	FreeSSL                 *bool    `json:"freeSsl"`
	SSLProvider             *string  `json:"sslProvider"`
	WildcardSSLAvailable    *bool    `json:"wildcardSslAvailable"`
	DedicatedIPAvailable    *bool    `json:"dedicatedIpAvailable"`
	DedicatedIPCostMonthly  *float64 `json:"dedicatedIpCostMonthly"`
	TwoFactorAuthentication *bool    `json:"twoFactorAuthentication"`
	BackupFrequency         *string  `json:"backupFrequency"`
	BackupRetentionDays     *float64 `json:"backupRetentionDays"`
	BackupRestoreFee        *float64 `json:"backupRestoreFee"`
	OnDemandBackup          *bool    `json:"onDemandBackup"`
	DownloadableBackups     *bool    `json:"downloadableBackups"`
}

type Compliance struct {
	GDPRComplianceTools      *bool    `json:"gdprComplianceTools"`
	PCICompliance            *bool    `json:"pciCompliance"`
	HIPAACompliance          *bool    `json:"hipaaCompliance"`
	DataCenterCertifications []string `json:"dataCenterCertifications"`
}

type Support struct {
	SupportChannels           []string `json:"supportChannels"`
	LiveChatAvailable         *bool    `json:"liveChatAvailable"`
	LiveChatHours             *string  `json:"liveChatHours"`
	PhoneSupportAvailable     *bool    `json:"phoneSupportAvailable"`
	PhoneSupportCountries     []string `json:"phoneSupportCountries"`
	PhoneSupportHours         *string  `json:"phoneSupportHours"`
	TicketSupport             *bool    `json:"ticketSupport"`
	PrioritySupportAvailable  *bool    `json:"prioritySupportAvailable"`
	PrioritySupportCost       *float64 `json:"prioritySupportCost"`
	SupportLanguageOptions    []string `json:"supportLanguageOptions"`
	KnowledgeBaseQuality      *float64 `json:"knowledgeBaseQuality"`
	CommunityForumActive      *bool    `json:"communityForumActive"`
	AverageSupportWaitMinutes *float64 `json:"averageSupportWaitMinutes"`
	SupportOutsourced         *bool    `json:"supportOutsourced"`
}

type WordPressFeatures struct {
	WordPressOptimized        *bool   `json:"wordpressOptimized"`
	WordPressAutoInstall      *bool   `json:"wordpressAutoInstall"`
	WordPressAutoUpdates      *bool   `json:"wordpressAutoUpdates"`
	WordPressStaging          *bool   `json:"wordpressStaging"`
	WooCommerceOptimized      *bool   `json:"woocommerceOptimized"`
	LiteSpeedCache            *bool   `json:"litespeedCache"`
	ObjectCaching             *bool   `json:"objectCaching"`
	ObjectCacheType           *string `json:"objectCacheType"`
	ManagedWordPressAvailable *bool   `json:"managedWordpressAvailable"`
	WPMultisiteSupport        *bool   `json:"wpMultisiteSupport"`
}

type ManagedWordPress struct {
	PricingModel           *PricingModel `json:"pricingModel"`
	MonthlyVisitLimit      *Quota        `json:"monthlyVisitLimit"`
	VisitOverageCost       *float64      `json:"visitOverageCost"`
	PHPWorkerLimit         *float64      `json:"phpWorkerLimit"`
	PluginRestrictions     []string      `json:"pluginRestrictions"`
	DevEnvironmentIncluded *bool         `json:"devEnvironmentIncluded"`
	DevEnvironmentName     *string       `json:"devEnvironmentName"`
}

type Migration struct {
	FreeMigration           *bool    `json:"freeMigration"`
	MigrationWebsitesLimit  *float64 `json:"migrationWebsitesLimit"`
	MigrationServiceQuality *float64 `json:"migrationServiceQuality"`
	MigrationTurnaroundDays *float64 `json:"migrationTurnaroundDays"`
	PaidMigrationCost       *float64 `json:"paidMigrationCost"`
}

type ControlPanel struct {
	CPanelIncluded           *bool   `json:"cpanelIncluded"`
	CPanelAlternative        *string `json:"cpanelAlternative"`
	ControlPanelName         *string `json:"controlPanelName"`
	SoftaculousAutoInstaller *bool   `json:"softaculousAutoInstaller"`
	WebsiteBuilderIncluded   *bool   `json:"websiteBuilderIncluded"`
	WebsiteBuilderName       *string `json:"websiteBuilderName"`
}

type Email struct {
	EmailAccountsIncluded   *bool    `json:"emailAccountsIncluded"`
	EmailAccountLimit       *Quota   `json:"emailAccountLimit"`
	IndividualMailboxSizeGB *float64 `json:"individualMailboxSizeGb"`
	WebmailAccess           *bool    `json:"webmailAccess"`
	SpamFilter              *bool    `json:"spamFilter"`
	EmailForwarding         *bool    `json:"emailForwarding"`
}

type PoliciesOverages struct {
	BandwidthOveragePolicy  *string  `json:"bandwidthOveragePolicy"`
	BandwidthOverageCost    *float64 `json:"bandwidthOverageCost"`
	StorageOveragePolicy    *string  `json:"storageOveragePolicy"`
	AccountSuspensionPolicy *string  `json:"accountSuspensionPolicy"`
	ResourceAbuseDefinition *string  `json:"resourceAbuseDefinition"`
	HiddenFeesNotes         *string  `json:"hiddenFeesNotes"`
}

type ContentRestrictions struct {
	AdultContentAllowed        *bool `json:"adultContentAllowed"`
	GamblingSitesAllowed       *bool `json:"gamblingSitesAllowed"`
	CryptocurrencySitesAllowed *bool `json:"cryptocurrencySitesAllowed"`
	FileHostingAllowed         *bool `json:"fileHostingAllowed"`
	ProxyVPNAllowed            *bool `json:"proxyVpnAllowed"`
	ResellerHostingAvailable   *bool `json:"resellerHostingAvailable"`
	WhiteLabelAvailable        *bool `json:"whiteLabelAvailable"`
}

type Business struct {
	APIAccess                 *bool   `json:"apiAccess"`
	AffiliateProgram          *bool   `json:"affiliateProgram"`
	AffiliateCommissionType   *string `json:"affiliateCommissionType"`
	AffiliateCommissionAmount *string `json:"affiliateCommissionAmount"`
}

type Reputation struct {
	TrustpilotRating           *float64 `json:"trustpilotRating"`
	TrustpilotReviewsCount     *float64 `json:"trustpilotReviewsCount"`
	G2Rating                   *float64 `json:"g2Rating"`
	BetterBusinessBureauRating *string  `json:"betterBusinessBureauRating"`
}

type Editorial struct {
	KnownIssues               *string `json:"knownIssues"`
	BestFor                   *string `json:"bestFor"`
	AvoidIf                   *string `json:"avoidIf"`
	CompetitorComparisonNotes *string `json:"competitorComparisonNotes"`
}

// Ratings are editorial scores on a 0-5 scale.
type Ratings struct {
	ValueForMoney  *float64 `json:"valueForMoney"`
	Performance    *float64 `json:"performance"`
	SupportQuality *float64 `json:"supportQuality"`
	Security       *float64 `json:"security"`
	Features       *float64 `json:"features"`
	EaseOfUse      *float64 `json:"easeOfUse"`
	Transparency   *float64 `json:"transparency"`
	OverallRating  *float64 `json:"overallRating"`
}

// UseCases are per-audience suitability scores on a 0-5 scale.
type UseCases struct {
	SuitabilityBlogger    *float64 `json:"suitabilityBlogger"`
	SuitabilityEcommerce  *float64 `json:"suitabilityEcommerce"`
	SuitabilityAgency     *float64 `json:"suitabilityAgency"`
	SuitabilityDeveloper  *float64 `json:"suitabilityDeveloper"`
	SuitabilityBeginner   *float64 `json:"suitabilityBeginner"`
	SuitabilityEnterprise *float64 `json:"suitabilityEnterprise"`
}

type PlatformSupport struct {
	DrupalSupport     *bool `json:"drupalSupport"`
	JoomlaSupport     *bool `json:"joomlaSupport"`
	MagentoSupport    *bool `json:"magentoSupport"`
	PrestashopSupport *bool `json:"prestashopSupport"`
	LaravelSupport    *bool `json:"laravelSupport"`
	DjangoSupport     *bool `json:"djangoSupport"`
	NextjsSupport     *bool `json:"nextjsSupport"`
	RailsSupport      *bool `json:"railsSupport"`
}

// PricingCalculated holds values derived at curation time, not at runtime.
type PricingCalculated struct {
	TotalFirstYearCost      *float64 `json:"totalFirstYearCost"`
	TotalSecondYearCost     *float64 `json:"totalSecondYearCost"`
	RenewalMarkupPercent    *float64 `json:"renewalMarkupPercent"`
	EffectiveMonthlyAverage *float64 `json:"effectiveMonthlyAverage"`
}

type ComparisonData struct {
	UniqueSellingPoint   *string  `json:"uniqueSellingPoint"`
	PrimaryCompetitors   []string `json:"primaryCompetitors"`
	BestAlternativeTo    *string  `json:"bestAlternativeTo"`
	IdealCustomerProfile *string  `json:"idealCustomerProfile"`
}

type RegionalTargeting struct {
	BestForCountries          []string `json:"bestForCountries"`
	LocalCurrencyBilling      []string `json:"localCurrencyBilling"`
	LocalSupportLanguages     []string `json:"localSupportLanguages"`
	DataSovereigntyCompliance []string `json:"dataSovereigntyCompliance"`
	RegionalWebsites          []string `json:"regionalWebsites"`
}

type FAQContent struct {
	IsThisHostGood       *string `json:"faqIsThisHostGood"`
	WhoOwnsThisHost      *string `json:"faqWhoOwnsThisHost"`
	HowMuchDoesItCost    *string `json:"faqHowMuchDoesItCost"`
	IsItBeginnerFriendly *string `json:"faqIsItBeginnerFriendly"`
	DoesItIncludeEmail   *string `json:"faqDoesItIncludeEmail"`
	CanIHostWordPress    *string `json:"faqCanIHostWordPress"`
	WhatsTheUptime       *string `json:"faqWhatsTheUptime"`
	CanICancelAnytime    *string `json:"faqCanICancelAnytime"`
}

type AdditionalPlatforms struct {
	GhostSupport         *bool `json:"ghostSupport"`
	ShopifyMigration     *bool `json:"shopifyMigration"`
	WixMigration         *bool `json:"wixMigration"`
	SquarespaceMigration *bool `json:"squarespaceMigration"`
	WebflowExport        *bool `json:"webflowExport"`
	StaticSiteSupport    *bool `json:"staticSiteSupport"`
}
