// HostDuel - Web Hosting Comparison
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostduel

package catalog

import "github.com/tomtom215/hostduel/internal/models"

// ToTableRow flattens a provider record into a table row. It is total: a nil
// or empty record yields a row whose only populated field is ID.
//
// The listing price prefers shared hosting, then VPS, then WordPress plans,
// and the renewal price follows the same order.
func ToTableRow(id string, c *models.Company) models.TableRow {
	if c == nil {
		c = &models.Company{}
	}

	var websiteURL *string
	if c.BasicInfo.WebsiteURL != "" {
		websiteURL = models.Ptr(c.BasicInfo.WebsiteURL)
	}

	return models.TableRow{
		ID:          id,
		Name:        c.BasicInfo.CompanyName,
		HostingType: c.BasicInfo.HostingType,
		WebsiteURL:  websiteURL,

		MonthlyPrice: models.Coalesce(
			c.Pricing.SharedHostingMonthlyPromo,
			c.Pricing.VPSMonthlyLowest,
			c.Pricing.WordPressHostingMonthlyPromo,
		),
		RenewalPrice: models.Coalesce(
			c.Pricing.SharedHostingMonthlyRenewal,
			c.Pricing.VPSMonthlyRenewal,
			c.Pricing.WordPressHostingMonthlyRenewal,
		),

		// Essential
		OverallRating:          c.Ratings.OverallRating,
		UptimeGuarantee:        c.ServerPerformance.UptimeGuaranteePercent,
		FreeSSL:                c.SecuritySSL.FreeSSL,
		FreeDomain:             c.Pricing.FreeDomainIncluded,
		FreeMigration:          c.Migration.FreeMigration,
		TrustpilotRating:       c.Reputation.TrustpilotRating,
		TrustpilotReviewsCount: c.Reputation.TrustpilotReviewsCount,

		// Technical
		StorageGB:          c.TechnicalSpecs.StorageGB,
		StorageType:        c.TechnicalSpecs.StorageType,
		BandwidthGB:        c.TechnicalSpecs.BandwidthGB,
		PHPVersions:        c.TechnicalSpecs.PHPVersionsAvailable,
		SSHAccess:          c.TechnicalSpecs.SSHAccess,
		GitDeployment:      c.TechnicalSpecs.GitDeployment,
		StagingEnvironment: c.TechnicalSpecs.StagingEnvironment,
		NodejsSupport:      c.TechnicalSpecs.NodejsSupport,
		PythonSupport:      c.TechnicalSpecs.PythonSupport,
		RubySupport:        c.TechnicalSpecs.RubySupport,
		MaxWebsites:        c.TechnicalSpecs.MaxWebsitesAllowed,
		MaxDatabases:       c.TechnicalSpecs.MaxDatabases,
		CronJobs:           c.TechnicalSpecs.CronJobsAllowed,
		RedisAvailable:     c.TechnicalSpecs.RedisAvailable,

		// WordPress
		WordPressOptimized:   c.WordPressFeatures.WordPressOptimized,
		WordPressAutoInstall: c.WordPressFeatures.WordPressAutoInstall,
		WordPressAutoUpdates: c.WordPressFeatures.WordPressAutoUpdates,
		WordPressStaging:     c.WordPressFeatures.WordPressStaging,
		WooCommerceOptimized: c.WordPressFeatures.WooCommerceOptimized,
		LiteSpeedCache:       c.WordPressFeatures.LiteSpeedCache,
		ObjectCaching:        c.WordPressFeatures.ObjectCaching,
		WPMultisite:          c.WordPressFeatures.WPMultisiteSupport,
		WPCLIAccess:          c.TechnicalSpecs.WPCLIAccess,

		// Security
		DDoSProtection:       c.ServerPerformance.DDoSProtection,
		DDoSProtectionLevel:  c.ServerPerformance.DDoSProtectionLevel,
		MalwareScanning:      c.ServerPerformance.MalwareScanning,
		MalwareRemoval:       c.ServerPerformance.MalwareRemoval,
		FirewallIncluded:     c.ServerPerformance.FirewallIncluded,
		BackupFrequency:      c.SecuritySSL.BackupFrequency,
		BackupRetentionDays:  c.SecuritySSL.BackupRetentionDays,
		BackupRestoreFee:     c.SecuritySSL.BackupRestoreFee,
		OnDemandBackup:       c.SecuritySSL.OnDemandBackup,
		TwoFactorAuth:        c.SecuritySSL.TwoFactorAuthentication,
		WildcardSSL:          c.SecuritySSL.WildcardSSLAvailable,
		DedicatedIPAvailable: c.SecuritySSL.DedicatedIPAvailable,

		// Support
		SupportChannels:       c.Support.SupportChannels,
		LiveChatAvailable:     c.Support.LiveChatAvailable,
		LiveChatHours:         c.Support.LiveChatHours,
		PhoneSupportAvailable: c.Support.PhoneSupportAvailable,
		PhoneSupportHours:     c.Support.PhoneSupportHours,
		TicketSupport:         c.Support.TicketSupport,
		PrioritySupport:       c.Support.PrioritySupportAvailable,
		SupportLanguages:      c.Support.SupportLanguageOptions,
		KnowledgeBaseQuality:  c.Support.KnowledgeBaseQuality,
		AvgSupportWaitMinutes: c.Support.AverageSupportWaitMinutes,

		// Pricing detail
		RenewalMarkupPercent:    c.PricingCalculated.RenewalMarkupPercent,
		FirstYearCost:           c.PricingCalculated.TotalFirstYearCost,
		SecondYearCost:          c.PricingCalculated.TotalSecondYearCost,
		MoneyBackDays:           c.Pricing.MoneyBackGuaranteeDays,
		SetupFee:                c.Pricing.SetupFee,
		MonthlyBillingAvailable: c.Pricing.MonthlyBillingAvailable,
		MinimumContractMonths:   c.Pricing.MinimumContractMonths,

		// Email
		EmailAccountsIncluded: c.Email.EmailAccountsIncluded,
		EmailAccountLimit:     c.Email.EmailAccountLimit,
		MailboxSizeGB:         c.Email.IndividualMailboxSizeGB,
		WebmailAccess:         c.Email.WebmailAccess,
		SpamFilter:            c.Email.SpamFilter,
		EmailForwarding:       c.Email.EmailForwarding,

		// Compliance
		GDPRCompliance:  c.Compliance.GDPRComplianceTools,
		PCICompliance:   c.Compliance.PCICompliance,
		HIPAACompliance: c.Compliance.HIPAACompliance,
		DataCenterCerts: c.Compliance.DataCenterCertifications,

		// Platform support
		DrupalSupport:     c.PlatformSupport.DrupalSupport,
		JoomlaSupport:     c.PlatformSupport.JoomlaSupport,
		MagentoSupport:    c.PlatformSupport.MagentoSupport,
		LaravelSupport:    c.PlatformSupport.LaravelSupport,
		DjangoSupport:     c.PlatformSupport.DjangoSupport,
		NextjsSupport:     c.PlatformSupport.NextjsSupport,
		RailsSupport:      c.PlatformSupport.RailsSupport,
		StaticSiteSupport: c.AdditionalPlatforms.StaticSiteSupport,

		// Performance
		CDNIncluded:          c.ServerPerformance.CDNIncluded,
		CDNProvider:          c.ServerPerformance.CDNProvider,
		ServerLocations:      c.ServerPerformance.ServerLocations,
		ServerLocationCount:  c.ServerPerformance.ServerLocationOptionsCount,
		ChooseServerLocation: c.ServerPerformance.ChooseServerLocation,
		HTTP2Support:         c.ServerPerformance.HTTP2Support,
		BrotliCompression:    c.ServerPerformance.BrotliCompression,
		UptimeSLACredit:      c.ServerPerformance.UptimeSLACredit,

		// Ratings
		ValueForMoney:      c.Ratings.ValueForMoney,
		PerformanceRating:  c.Ratings.Performance,
		SupportQuality:     c.Ratings.SupportQuality,
		SecurityRating:     c.Ratings.Security,
		FeaturesRating:     c.Ratings.Features,
		EaseOfUse:          c.Ratings.EaseOfUse,
		TransparencyRating: c.Ratings.Transparency,

		// Suitability
		SuitabilityBlogger:    c.UseCases.SuitabilityBlogger,
		SuitabilityEcommerce:  c.UseCases.SuitabilityEcommerce,
		SuitabilityAgency:     c.UseCases.SuitabilityAgency,
		SuitabilityDeveloper:  c.UseCases.SuitabilityDeveloper,
		SuitabilityBeginner:   c.UseCases.SuitabilityBeginner,
		SuitabilityEnterprise: c.UseCases.SuitabilityEnterprise,

		// Migration
		MigrationWebsitesLimit:  c.Migration.MigrationWebsitesLimit,
		MigrationTurnaroundDays: c.Migration.MigrationTurnaroundDays,
		PaidMigrationCost:       c.Migration.PaidMigrationCost,
		MigrationQuality:        c.Migration.MigrationServiceQuality,

		// Control panel
		CPanelIncluded:         c.ControlPanel.CPanelIncluded,
		ControlPanelName:       c.ControlPanel.ControlPanelName,
		Softaculous:            c.ControlPanel.SoftaculousAutoInstaller,
		WebsiteBuilderIncluded: c.ControlPanel.WebsiteBuilderIncluded,
		WebsiteBuilderName:     c.ControlPanel.WebsiteBuilderName,

		// Policies
		BandwidthOveragePolicy:     c.PoliciesOverages.BandwidthOveragePolicy,
		StorageOveragePolicy:       c.PoliciesOverages.StorageOveragePolicy,
		AdultContentAllowed:        c.ContentRestrictions.AdultContentAllowed,
		GamblingSitesAllowed:       c.ContentRestrictions.GamblingSitesAllowed,
		CryptocurrencySitesAllowed: c.ContentRestrictions.CryptocurrencySitesAllowed,
		ResellerHostingAvailable:   c.ContentRestrictions.ResellerHostingAvailable,
		WhiteLabelAvailable:        c.ContentRestrictions.WhiteLabelAvailable,
		APIAccess:                  c.Business.APIAccess,

		// Basic info
		YearFounded:              c.BasicInfo.YearFounded,
		HeadquartersCountry:      c.BasicInfo.HeadquartersCountry,
		ParentCompany:            c.BasicInfo.ParentCompany,
		GreenHosting:             c.BasicInfo.GreenHosting,
		InstantAccountActivation: c.BasicInfo.InstantAccountActivation,

		// Additional pricing
		FreeDomainDurationMonths: c.Pricing.FreeDomainDurationMonths,
		MoneyBackExclusions:      c.Pricing.MoneyBackExclusions,
		AcceptedPaymentMethods:   c.Pricing.AcceptedPaymentMethods,
		AutoRenewalDefault:       c.Pricing.AutoRenewalDefault,
		DomainPrivacyIncluded:    c.Pricing.DomainPrivacyIncluded,
		DomainPrivacyCostYearly:  c.Pricing.DomainPrivacyCostYearly,

		// Additional technical
		InodeLimit:            c.TechnicalSpecs.InodeLimit,
		MaxDatabaseSizeGB:     c.TechnicalSpecs.MaxDatabaseSizeGB,
		MaxFileUploadSizeMB:   c.TechnicalSpecs.MaxFileUploadSizeMB,
		PHPVersionSwitching:   c.TechnicalSpecs.PHPVersionSwitching,
		SSHAccessTierRequired: c.TechnicalSpecs.SSHAccessTierRequired,
		StagingIncludedTier:   c.TechnicalSpecs.StagingIncludedTier,
		SubdomainsLimit:       c.TechnicalSpecs.SubdomainsLimit,
		FTPAccountsLimit:      c.TechnicalSpecs.FTPAccountsLimit,
		DatabaseType:          c.TechnicalSpecs.DatabaseType,
		ElasticsearchSupport:  c.TechnicalSpecs.ElasticsearchSupport,
		ImageOptimization:     c.TechnicalSpecs.ImageOptimization,

		// Additional security
		SSLProvider:            c.SecuritySSL.SSLProvider,
		DedicatedIPCostMonthly: c.SecuritySSL.DedicatedIPCostMonthly,
		MalwareRemovalCost:     c.ServerPerformance.MalwareRemovalCost,
		DownloadableBackups:    c.SecuritySSL.DownloadableBackups,

		// Additional support
		PhoneSupportCountries: c.Support.PhoneSupportCountries,
		PrioritySupportCost:   c.Support.PrioritySupportCost,
		CommunityForumActive:  c.Support.CommunityForumActive,
		SupportOutsourced:     c.Support.SupportOutsourced,

		// Additional WordPress
		ObjectCacheType:           c.WordPressFeatures.ObjectCacheType,
		ManagedWordPressAvailable: c.WordPressFeatures.ManagedWordPressAvailable,

		// Managed WordPress
		WPPricingModel:         c.ManagedWordPress.PricingModel,
		MonthlyVisitLimit:      c.ManagedWordPress.MonthlyVisitLimit,
		VisitOverageCost:       c.ManagedWordPress.VisitOverageCost,
		PHPWorkerLimit:         c.ManagedWordPress.PHPWorkerLimit,
		PluginRestrictions:     c.ManagedWordPress.PluginRestrictions,
		DevEnvironmentIncluded: c.ManagedWordPress.DevEnvironmentIncluded,
		DevEnvironmentName:     c.ManagedWordPress.DevEnvironmentName,

		// Additional policies
		BandwidthOverageCost:    c.PoliciesOverages.BandwidthOverageCost,
		AccountSuspensionPolicy: c.PoliciesOverages.AccountSuspensionPolicy,
		ResourceAbuseDefinition: c.PoliciesOverages.ResourceAbuseDefinition,
		FileHostingAllowed:      c.ContentRestrictions.FileHostingAllowed,
		ProxyVPNAllowed:         c.ContentRestrictions.ProxyVPNAllowed,

		// Business and affiliate
		AffiliateProgram:          c.Business.AffiliateProgram,
		AffiliateCommissionType:   c.Business.AffiliateCommissionType,
		AffiliateCommissionAmount: c.Business.AffiliateCommissionAmount,

		// External ratings
		G2Rating:                   c.Reputation.G2Rating,
		BetterBusinessBureauRating: c.Reputation.BetterBusinessBureauRating,

		// Editorial
		KnownIssues:               c.Editorial.KnownIssues,
		BestFor:                   c.Editorial.BestFor,
		AvoidIf:                   c.Editorial.AvoidIf,
		CompetitorComparisonNotes: c.Editorial.CompetitorComparisonNotes,

		// Comparison data
		UniqueSellingPoint:   c.ComparisonData.UniqueSellingPoint,
		PrimaryCompetitors:   c.ComparisonData.PrimaryCompetitors,
		BestAlternativeTo:    c.ComparisonData.BestAlternativeTo,
		IdealCustomerProfile: c.ComparisonData.IdealCustomerProfile,

		// Regional targeting
		BestForCountries:          c.RegionalTargeting.BestForCountries,
		LocalCurrencyBilling:      c.RegionalTargeting.LocalCurrencyBilling,
		LocalSupportLanguages:     c.RegionalTargeting.LocalSupportLanguages,
		DataSovereigntyCompliance: c.RegionalTargeting.DataSovereigntyCompliance,

		// Additional platforms
		PrestashopSupport:    c.PlatformSupport.PrestashopSupport,
		GhostSupport:         c.AdditionalPlatforms.GhostSupport,
		ShopifyMigration:     c.AdditionalPlatforms.ShopifyMigration,
		WixMigration:         c.AdditionalPlatforms.WixMigration,
		SquarespaceMigration: c.AdditionalPlatforms.SquarespaceMigration,
		WebflowExport:        c.AdditionalPlatforms.WebflowExport,
	}
}

