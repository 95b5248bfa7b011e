package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/marogo-civils/marogo-web/internal/config"
	"github.com/marogo-civils/marogo-web/internal/content"
	"github.com/marogo-civils/marogo-web/internal/db/models"
	"github.com/marogo-civils/marogo-web/internal/uniuri"
)

const generatedPasswordLength = 16

// ensureAdmin creates the console account on first boot. Without a
// configured password a random one is generated and logged once.
func ensureAdmin(cfg *config.Config, db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to check admin account")
		return
	}

	if count > 0 {
		return
	}

	password := cfg.Admin.Password
	if password == "" {
		password = uniuri.NewLen(generatedPasswordLength)
		log.Warn().
			Str("username", cfg.Admin.Username).
			Str("password", password).
			Msg("created admin account with a generated password, change it after first login")
	} else {
		log.Info().Str("username", cfg.Admin.Username).Msg("created admin account")
	}

	if err := db.Create(&models.Admin{
		Username: cfg.Admin.Username,
		Password: models.HashPassword(password),
	}).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to create admin account")
	}
}

// Seed opens the database and fills every empty content table with sample
// rows so a fresh install renders a complete site. Tables that already hold
// rows are left alone.
func Seed(cfg *config.Config) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return
	}

	db := openDatabase(cfg)

	ensureAdmin(cfg, db)

	seedProjects(db)
	seedServices(db)
	seedBlogPosts(db)
	seedTestimonials(db)
	seedStatistics(db)
	seedTeamMembers(db)
	seedClientLogos(db)
	seedCertifications(db)

	log.Info().Msg("seed finished")
}

// tableEmpty reports whether the model's table holds no rows.
func tableEmpty(db *gorm.DB, model any, label string) bool {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Str("table", label).Msg("failed to check table")
		return false
	}

	return count == 0
}

func create(db *gorm.DB, rows any, label string) {
	if err := db.Create(rows).Error; err != nil {
		log.Fatal().Err(err).Str("table", label).Msg("failed to seed table")
	}

	log.Info().Str("table", label).Msg("seeded sample rows")
}

func seedProjects(db *gorm.DB) {
	if !tableEmpty(db, &models.Project{}, "projects") {
		return
	}

	create(db, []*models.Project{
		{
			Title:          "Lilongwe Commercial Building",
			Client:         "Phiri Investments",
			Location:       "Lilongwe, Area 47",
			ProjectValue:   "750M MWK",
			CompletionDate: "December 2023",
			Details: "A multi-story commercial complex featuring modern architecture and " +
				"sustainable design. This project was completed ahead of schedule and " +
				"serves as a landmark in the city center.",
			ImageURL:   "project1.webp",
			Category:   "Building Construction",
			DatePosted: time.Now(),
		},
		{
			Title:          "Kasungu Solar Mini-Grid",
			Client:         "Rural Electrification Programme",
			Location:       "Kasungu",
			ProjectValue:   "320M MWK",
			CompletionDate: "June 2024",
			Details: "Design and installation of a village scale solar mini-grid with " +
				"battery storage, serving a trading centre and the surrounding " +
				"households with reliable power.",
			Category:   "Solar Systems",
			DatePosted: time.Now(),
		},
	}, "projects")
}

func seedServices(db *gorm.DB) {
	if !tableEmpty(db, &models.Service{}, "services") {
		return
	}

	rows := []*models.Service{
		{
			Title:   "Building Construction",
			Summary: "Commercial and residential construction from foundation to handover.",
			FullContent: "We deliver commercial buildings, office blocks and residential " +
				"developments across Malawi. Our in-house teams cover structural works, " +
				"finishes and external works, with a single point of responsibility " +
				"from the first site visit to handover.",
			OrderNum:            1,
			ProjectCategoryLink: "Building Construction",
		},
		{
			Title:   "Solar & Power Systems",
			Summary: "Grid-tied and off-grid solar installations for homes and businesses.",
			FullContent: "From rooftop systems to village mini-grids, we design, supply " +
				"and install solar power systems sized to the load they serve, " +
				"including battery storage and backup integration.",
			OrderNum:            2,
			ProjectCategoryLink: "Solar Systems",
		},
		{
			Title:   "Irrigation & Water Works",
			Summary: "Irrigation schemes, boreholes and drainage for farms and estates.",
			FullContent: "We build irrigation schemes, sink and equip boreholes and " +
				"construct drainage works, supporting commercial farms and community " +
				"water projects alike.",
			OrderNum:            3,
			ProjectCategoryLink: "Irrigation",
		},
	}

	for _, row := range rows {
		row.Slug = content.Slugify(row.Title)
	}

	create(db, rows, "services")
}

func seedBlogPosts(db *gorm.DB) {
	if !tableEmpty(db, &models.BlogPost{}, "blog_posts") {
		return
	}

	create(db, []*models.BlogPost{
		{
			Title: "The Future of Sustainable Construction in Malawi",
			Content: "Exploring green building materials and energy-efficient designs is " +
				"not just a trend; it's a necessity for a brighter future. Our latest " +
				"projects incorporate solar power and rainwater harvesting...",
			Author:     "Admin",
			DatePosted: time.Now(),
		},
	}, "blog_posts")
}

func seedTestimonials(db *gorm.DB) {
	if !tableEmpty(db, &models.Testimonial{}, "testimonials") {
		return
	}

	create(db, []*models.Testimonial{
		{
			Author:   "John Phiri",
			Position: "CEO, Phiri Investments",
			Quote: "Marogo Civils delivered our project on time and exceeded our quality " +
				"expectations. Their professionalism is unmatched in Malawi.",
		},
	}, "testimonials")
}

func seedStatistics(db *gorm.DB) {
	if !tableEmpty(db, &models.Statistic{}, "statistics") {
		return
	}

	create(db, []*models.Statistic{
		{Name: "Projects Completed", Value: 120, Icon: "fas fa-hard-hat", OrderNum: 1},
		{Name: "Happy Clients", Value: 85, Icon: "fas fa-users", OrderNum: 2},
		{Name: "Years of Experience", Value: 12, Icon: "fas fa-clock", OrderNum: 3},
		{Name: "Awards Won", Value: 6, Icon: "fas fa-award", OrderNum: 4},
	}, "statistics")
}

func seedTeamMembers(db *gorm.DB) {
	if !tableEmpty(db, &models.TeamMember{}, "team_members") {
		return
	}

	create(db, []*models.TeamMember{
		{
			Name:     "Grant Marogo",
			Position: "Managing Director",
			Bio: "Founder of Marogo Civils with over a decade of experience delivering " +
				"construction projects across Malawi.",
			OrderNum: 1,
		},
		{
			Name:     "Chisomo Banda",
			Position: "Chief Engineer",
			Bio: "Leads our engineering team and oversees quality across every active " +
				"site.",
			OrderNum: 2,
		},
	}, "team_members")
}

func seedClientLogos(db *gorm.DB) {
	if !tableEmpty(db, &models.ClientLogo{}, "client_logos") {
		return
	}

	create(db, []*models.ClientLogo{
		{Name: "Malawi Revenue Authority", ImageURL: "mra-logo.webp", WebsiteURL: "https://www.mra.mw", OrderNum: 1},
		{Name: "ESCOM", ImageURL: "escom-logo.webp", WebsiteURL: "https://www.escom.mw", OrderNum: 2},
		{Name: "National Bank of Malawi", ImageURL: "nbm-logo.webp", WebsiteURL: "https://www.natbank.co.mw", OrderNum: 3},
	}, "client_logos")
}

func seedCertifications(db *gorm.DB) {
	if !tableEmpty(db, &models.Certification{}, "certifications") {
		return
	}

	create(db, []*models.Certification{
		{Name: "500 Million Kwacha Category", IssuingBody: "National Construction Industry Council (NCIC)", OrderNum: 1},
		{Name: "Tax Compliant Certified", IssuingBody: "Malawi Revenue Authority (MRA)", OrderNum: 2},
		{Name: "Certified in Advanced Site Safety", IssuingBody: "Malawi Institute of Engineers", OrderNum: 3},
	}, "certifications")
}
