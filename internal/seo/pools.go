package seo

import "fmt"

// Variant pools are module-level immutable data. Each pool holds 2-4
// candidate texts for one (entity kind, field) pair; selection among them is
// driven by the stable page key. Variants that need an absent context field
// return "" and drop out before selection.

var regionTitlePool = []Variant{
	func(c PageContext) string {
		return fmt.Sprintf("Маркетплейс услуг и товаров в %s: цены и исполнители", c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Заказать услуги в %s онлайн", c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("%s: услуги, товары и компании рядом с вами", c.RegionName)
	},
}

var regionDescriptionPool = []Variant{
	func(c PageContext) string {
		return fmt.Sprintf("Каталог проверенных исполнителей и магазинов в %s. Сравнивайте цены и отзывы, заказывайте онлайн.", c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Ищете услуги в %s? Сравните предложения компаний и выберите лучшую цену.", c.RegionLocative)
	},
}

var catalogTitlePool = []Variant{
	func(c PageContext) string {
		if c.Category == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s: каталог предложений", c.Category, c.RegionLocative)
	},
	func(c PageContext) string {
		if c.Category == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s по выгодным ценам", c.Category, c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Каталог услуг и товаров в %s", c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Все предложения в %s: цены и продавцы", c.RegionLocative)
	},
}

var catalogDescriptionPool = []Variant{
	func(c PageContext) string {
		if c.Category == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s: актуальные предложения от проверенных продавцов. Сравнение цен, отзывы, заказ онлайн.", c.Category, c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Полный каталог предложений в %s. Фильтры по цене и рейтингу, отзывы реальных заказчиков.", c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Выбирайте услуги и товары в %s: свежие цены, рейтинги продавцов, быстрый заказ.", c.RegionLocative)
	},
}

var serviceTitlePool = []Variant{
	func(c PageContext) string {
		return fmt.Sprintf("%s в %s: цены и исполнители", c.EntityName, c.RegionLocative)
	},
	func(c PageContext) string {
		if c.PriceRange == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s, %s", c.EntityName, c.RegionLocative, c.PriceRange)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Заказать %s в %s с гарантией", c.EntityName, c.RegionLocative)
	},
}

var serviceDescriptionPool = []Variant{
	func(c PageContext) string {
		if c.SellerCount <= 0 || c.PriceRange == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s: %s. Исполнителей в каталоге: %d. Сравните условия и выберите лучшего.", c.EntityName, c.RegionLocative, c.PriceRange, c.SellerCount)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Закажите %s в %s. Проверенные исполнители, честные цены, отзывы заказчиков.", c.EntityName, c.RegionLocative)
	},
	func(c PageContext) string {
		if c.PriceRange == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s: %s. Выбирайте исполнителя по рейтингу и отзывам.", c.EntityName, c.RegionLocative, c.PriceRange)
	},
}

var productTitlePool = []Variant{
	func(c PageContext) string {
		return fmt.Sprintf("%s купить в %s: цены продавцов", c.EntityName, c.RegionLocative)
	},
	func(c PageContext) string {
		if c.PriceRange == "" {
			return ""
		}
		return fmt.Sprintf("%s в %s, %s", c.EntityName, c.RegionLocative, c.PriceRange)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Купить %s в %s с доставкой", c.EntityName, c.RegionLocative)
	},
}

var productDescriptionPool = []Variant{
	func(c PageContext) string {
		if c.SellerCount <= 0 {
			return ""
		}
		return fmt.Sprintf("Купить %s в %s. Продавцов в каталоге: %d. Сравнение цен и условий доставки.", c.EntityName, c.RegionLocative, c.SellerCount)
	},
	func(c PageContext) string {
		return fmt.Sprintf("%s в %s: актуальные цены, наличие и доставка.", c.EntityName, c.RegionLocative)
	},
	func(c PageContext) string {
		if c.PriceRange == "" {
			return ""
		}
		return fmt.Sprintf("Цены на %s в %s: %s. Выбирайте продавца с лучшими условиями.", c.EntityName, c.RegionLocative, c.PriceRange)
	},
}

var companyTitlePool = []Variant{
	func(c PageContext) string {
		return fmt.Sprintf("%s в %s: услуги, отзывы, контакты", c.EntityName, c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Компания %s в %s: цены и отзывы", c.EntityName, c.RegionLocative)
	},
}

var companyDescriptionPool = []Variant{
	func(c PageContext) string {
		return fmt.Sprintf("%s в %s: рейтинг компании, отзывы клиентов и актуальные услуги.", c.EntityName, c.RegionLocative)
	},
	func(c PageContext) string {
		return fmt.Sprintf("Отзывы о компании %s в %s. Смотрите рейтинг и заказывайте услуги онлайн.", c.EntityName, c.RegionLocative)
	},
}
