package model

// AllModels 需要建表的模型，用于 AutoMigrate
var AllModels = []interface{}{
	&Tool{},
}
