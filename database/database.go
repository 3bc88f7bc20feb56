package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo     *BlogPostRepo
	landingImageRepo *LandingImageRepo
	homeImageRepo    *HomeImageRepo
	libraryImageRepo *LibraryImageRepo
	siteSettingRepo  *SiteSettingRepo
	pageContentRepo  *PageContentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo:     NewBlogPostRepo(db),
		landingImageRepo: NewLandingImageRepo(db),
		homeImageRepo:    NewHomeImageRepo(db),
		libraryImageRepo: NewLibraryImageRepo(db),
		siteSettingRepo:  NewSiteSettingRepo(db),
		pageContentRepo:  NewPageContentRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) LandingImageRepo() *LandingImageRepo {
	return d.landingImageRepo
}

func (d Database) HomeImageRepo() *HomeImageRepo {
	return d.homeImageRepo
}

func (d Database) LibraryImageRepo() *LibraryImageRepo {
	return d.libraryImageRepo
}

func (d Database) SiteSettingRepo() *SiteSettingRepo {
	return d.siteSettingRepo
}

func (d Database) PageContentRepo() *PageContentRepo {
	return d.pageContentRepo
}
