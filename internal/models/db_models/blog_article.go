package db_models

type BlogArticle struct {
	BaseModel
	Title    string
	Excerpt  string
	Content  string
	Author   string
	Date     string `gorm:"size:10;index"`
	Category string
	Image    string
	ReadTime string
}
