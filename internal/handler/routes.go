package handler

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Product   *ProductHandler
	Sale      *SaleHandler
	User      *UserHandler
	Buyer     *BuyerHandler
	Category  *CategoryHandler
	Tower     *TowerHandler
	Equipment *EquipmentHandler
	Auth      *AuthHandler
}

// Guards are prepended to mutating routes. Both are empty when
// authentication is disabled.
type Guards struct {
	Write []fiber.Handler
	Admin []fiber.Handler
}

func with(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}

// Register mounts every endpoint at the root of r.
func Register(r fiber.Router, h Handlers, g Guards) {
	// ============ AUTH ============
	r.Post("/login", h.Auth.Login)
	r.Post("/validateToken", h.Auth.ValidateToken)
	r.Post("/resetPassword", h.Auth.ResetPassword)

	// ============ PRODUCTS & SALES ============
	r.Get("/getProducts", h.Product.GetProducts)
	r.Get("/getProduct/:id", h.Product.GetProduct)
	r.Get("/getProductsByCategory/:categoryCode", h.Product.GetProductsByCategory)
	r.Post("/createProduct", with(g.Write, h.Product.CreateProduct)...)
	r.Post("/updateProduct", with(g.Write, h.Product.UpdateProduct)...)
	r.Post("/removeProduct", with(g.Write, h.Product.RemoveProduct)...)

	r.Get("/getSoldProducts", h.Sale.GetSoldProducts)
	r.Post("/sellProduct", with(g.Write, h.Sale.SellProduct)...)
	r.Post("/updatePaymentDetails", with(g.Write, h.Sale.UpdatePaymentDetails)...)

	// ============ USERS & BUYERS ============
	r.Get("/getUsers", with(g.Admin, h.User.GetUsers)...)
	r.Post("/addUser", with(g.Admin, h.User.AddUser)...)
	r.Post("/updateUser", with(g.Admin, h.User.UpdateUser)...)
	r.Post("/removeUser", with(g.Admin, h.User.RemoveUser)...)

	r.Get("/getBuyers", h.Buyer.GetBuyers)
	r.Post("/addBuyer", with(g.Write, h.Buyer.AddBuyer)...)

	// ============ CATALOG ============
	r.Get("/getCategories", h.Category.GetCategories)
	r.Get("/getCategory/:code", h.Category.GetCategory)
	r.Post("/createCategory", with(g.Write, h.Category.CreateCategory)...)
	r.Post("/updateCategory", with(g.Write, h.Category.UpdateCategory)...)
	r.Post("/removeCategory", with(g.Write, h.Category.RemoveCategory)...)

	r.Get("/getTowers", h.Tower.GetTowers)
	r.Get("/getTower/:id", h.Tower.GetTower)
	r.Post("/createTower", with(g.Write, h.Tower.CreateTower)...)
	r.Post("/updateTower", with(g.Write, h.Tower.UpdateTower)...)
	r.Post("/removeTower", with(g.Write, h.Tower.RemoveTower)...)

	r.Get("/getEquipments", h.Equipment.GetEquipments)
	r.Get("/getEquipment/:id", h.Equipment.GetEquipment)
	r.Post("/createEquipment", with(g.Write, h.Equipment.CreateEquipment)...)
	r.Post("/updateEquipment", with(g.Write, h.Equipment.UpdateEquipment)...)
	r.Post("/removeEquipment", with(g.Write, h.Equipment.RemoveEquipment)...)
}
