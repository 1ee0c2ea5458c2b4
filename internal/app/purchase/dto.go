package purchase

import (
	"mugloarbot/internal/domain/session"
	"mugloarbot/internal/domain/shop"
)

type Request struct {
	State   session.State
	Catalog shop.Catalog
}

type Purchase struct {
	Tier    string
	Item    shop.Item
	Success bool
}

type Skip struct {
	Tier   string
	Reason error
}

type Response struct {
	State     session.State
	Purchases []Purchase
	Skipped   []Skip
}
