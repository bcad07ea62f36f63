package service_test

import (
	"context"
	"time"

	"github.com/catvAlbuss/minimarketsystem/internal/model"
	"github.com/catvAlbuss/minimarketsystem/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────
// Every stub keeps rows in a map keyed by id and returns gorm.ErrRecordNotFound
// for missing rows so the services translate lookups the same way they do
// against postgres.

type stubUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*model.User)}
}

func (r *stubUserRepo) Crear(_ context.Context, u *model.User) error {
	for _, e := range r.users {
		if e.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	u.ID = r.nextID
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) ObtenerPorID(_ context.Context, id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) ObtenerPorEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) Listar(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Actualizar(_ context.Context, u *model.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

type stubCustomerRepo struct {
	customers map[uint]*model.Customer
	nextID    uint
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[uint]*model.Customer)}
}

func (r *stubCustomerRepo) Crear(_ context.Context, c *model.Customer) error {
	for _, e := range r.customers {
		if e.DNI == c.DNI || e.Email == c.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.customers[c.ID] = c
	return nil
}

func (r *stubCustomerRepo) ObtenerPorID(_ context.Context, id uint) (*model.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomerRepo) ObtenerPorDNI(_ context.Context, dni string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.DNI == dni {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCustomerRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCustomerRepo) Listar(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCustomerRepo) Actualizar(_ context.Context, c *model.Customer) error {
	if _, ok := r.customers[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *stubCustomerRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.customers, id)
	return nil
}

func (r *stubCustomerRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.customers[id]
	return ok, nil
}

var _ repository.CustomerRepository = (*stubCustomerRepo)(nil)

type stubCategoryRepo struct {
	categories map[uint]*model.Category
	nextID     uint
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uint]*model.Category)}
}

func (r *stubCategoryRepo) Crear(_ context.Context, c *model.Category) error {
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) ObtenerPorID(_ context.Context, id uint) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) Listar(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubCategoryRepo) Actualizar(_ context.Context, c *model.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *stubCategoryRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

func (r *stubCategoryRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.categories[id]
	return ok, nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product)}
}

func (r *stubProductRepo) Crear(_ context.Context, p *model.Product) error {
	for _, e := range r.products {
		if e.Code == p.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	p.ID = r.nextID
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) ObtenerPorID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) ObtenerPorCodigo(_ context.Context, code string) (*model.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) Listar(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Actualizar(_ context.Context, p *model.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.products[id]
	return ok, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

type stubPromotionRepo struct {
	rows   map[uint]*model.Promotion
	nextID uint
}

func newStubPromotionRepo() *stubPromotionRepo {
	return &stubPromotionRepo{rows: make(map[uint]*model.Promotion)}
}

func (r *stubPromotionRepo) Crear(_ context.Context, p *model.Promotion) error {
	return r.CrearTx(nil, p)
}

func (r *stubPromotionRepo) CrearTx(_ *gorm.DB, p *model.Promotion) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *stubPromotionRepo) ObtenerPorID(_ context.Context, id uint) (*model.Promotion, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPromotionRepo) Listar(_ context.Context) ([]model.Promotion, error) {
	out := make([]model.Promotion, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPromotionRepo) EliminarPorNombreTx(_ *gorm.DB, name string) error {
	for id, p := range r.rows {
		if p.NamePromotion == name {
			delete(r.rows, id)
		}
	}
	return nil
}

func (r *stubPromotionRepo) DB() *gorm.DB { return nil }

var _ repository.PromotionRepository = (*stubPromotionRepo)(nil)

type stubSaleRepo struct {
	sales  map[uint]*model.Sale
	nextID uint
}

func newStubSaleRepo() *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale)}
}

func (r *stubSaleRepo) Crear(_ context.Context, s *model.Sale) error {
	for _, e := range r.sales {
		if e.VoucherNumber == s.VoucherNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	s.ID = r.nextID
	r.sales[s.ID] = s
	return nil
}

func (r *stubSaleRepo) ObtenerPorID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *stubSaleRepo) ObtenerPorVoucher(_ context.Context, voucherNumber string) (*model.Sale, error) {
	for _, s := range r.sales {
		if s.VoucherNumber == voucherNumber {
			cp := *s
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSaleRepo) Listar(_ context.Context) ([]model.Sale, error) {
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSaleRepo) Actualizar(_ context.Context, s *model.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *stubSaleRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.sales, id)
	return nil
}

func (r *stubSaleRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.sales[id]
	return ok, nil
}

func (r *stubSaleRepo) TotalDesde(_ context.Context, desde time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		if !s.DateTime.Before(desde) {
			total = total.Add(s.Total)
		}
	}
	return total, nil
}

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

type stubSaleDetailRepo struct {
	details map[uint]*model.SaleDetail
	nextID  uint
}

func newStubSaleDetailRepo() *stubSaleDetailRepo {
	return &stubSaleDetailRepo{details: make(map[uint]*model.SaleDetail)}
}

func (r *stubSaleDetailRepo) Crear(_ context.Context, d *model.SaleDetail) error {
	r.nextID++
	d.ID = r.nextID
	r.details[d.ID] = d
	return nil
}

func (r *stubSaleDetailRepo) ObtenerPorID(_ context.Context, id uint) (*model.SaleDetail, error) {
	d, ok := r.details[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubSaleDetailRepo) Listar(_ context.Context) ([]model.SaleDetail, error) {
	out := make([]model.SaleDetail, 0, len(r.details))
	for _, d := range r.details {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubSaleDetailRepo) Actualizar(_ context.Context, d *model.SaleDetail) error {
	if _, ok := r.details[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *d
	r.details[d.ID] = &cp
	return nil
}

func (r *stubSaleDetailRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.details, id)
	return nil
}

var _ repository.SaleDetailRepository = (*stubSaleDetailRepo)(nil)

type stubProviderRepo struct {
	providers map[uint]*model.Provider
	nextID    uint
}

func newStubProviderRepo() *stubProviderRepo {
	return &stubProviderRepo{providers: make(map[uint]*model.Provider)}
}

func (r *stubProviderRepo) Crear(_ context.Context, p *model.Provider) error {
	r.nextID++
	p.ID = r.nextID
	r.providers[p.ID] = p
	return nil
}

func (r *stubProviderRepo) ObtenerPorID(_ context.Context, id uint) (*model.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProviderRepo) Listar(_ context.Context) ([]model.Provider, error) {
	out := make([]model.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProviderRepo) Actualizar(_ context.Context, p *model.Provider) error {
	if _, ok := r.providers[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *p
	r.providers[p.ID] = &cp
	return nil
}

func (r *stubProviderRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.providers, id)
	return nil
}

func (r *stubProviderRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.providers[id]
	return ok, nil
}

var _ repository.ProviderRepository = (*stubProviderRepo)(nil)

type stubBuyRepo struct {
	buys   map[uint]*model.Buy
	nextID uint
}

func newStubBuyRepo() *stubBuyRepo {
	return &stubBuyRepo{buys: make(map[uint]*model.Buy)}
}

func (r *stubBuyRepo) Crear(_ context.Context, b *model.Buy) error {
	for _, e := range r.buys {
		if e.VoucherNumber == b.VoucherNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.nextID++
	b.ID = r.nextID
	r.buys[b.ID] = b
	return nil
}

func (r *stubBuyRepo) ObtenerPorID(_ context.Context, id uint) (*model.Buy, error) {
	b, ok := r.buys[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubBuyRepo) ObtenerPorVoucher(_ context.Context, voucherNumber string) (*model.Buy, error) {
	for _, b := range r.buys {
		if b.VoucherNumber == voucherNumber {
			cp := *b
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBuyRepo) Listar(_ context.Context) ([]model.Buy, error) {
	out := make([]model.Buy, 0, len(r.buys))
	for _, b := range r.buys {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBuyRepo) Actualizar(_ context.Context, b *model.Buy) error {
	if _, ok := r.buys[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	r.buys[b.ID] = &cp
	return nil
}

func (r *stubBuyRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.buys, id)
	return nil
}

func (r *stubBuyRepo) Existe(_ context.Context, id uint) (bool, error) {
	_, ok := r.buys[id]
	return ok, nil
}

var _ repository.BuyRepository = (*stubBuyRepo)(nil)

type stubBuyDetailRepo struct {
	details map[uint]*model.BuyDetail
	nextID  uint
}

func newStubBuyDetailRepo() *stubBuyDetailRepo {
	return &stubBuyDetailRepo{details: make(map[uint]*model.BuyDetail)}
}

func (r *stubBuyDetailRepo) Crear(_ context.Context, d *model.BuyDetail) error {
	r.nextID++
	d.ID = r.nextID
	r.details[d.ID] = d
	return nil
}

func (r *stubBuyDetailRepo) ObtenerPorID(_ context.Context, id uint) (*model.BuyDetail, error) {
	d, ok := r.details[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *stubBuyDetailRepo) Listar(_ context.Context) ([]model.BuyDetail, error) {
	out := make([]model.BuyDetail, 0, len(r.details))
	for _, d := range r.details {
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubBuyDetailRepo) Actualizar(_ context.Context, d *model.BuyDetail) error {
	if _, ok := r.details[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *d
	r.details[d.ID] = &cp
	return nil
}

func (r *stubBuyDetailRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.details, id)
	return nil
}

var _ repository.BuyDetailRepository = (*stubBuyDetailRepo)(nil)

type stubBranchRepo struct {
	branches map[uint]*model.Branch
	nextID   uint
}

func newStubBranchRepo() *stubBranchRepo {
	return &stubBranchRepo{branches: make(map[uint]*model.Branch)}
}

func (r *stubBranchRepo) Crear(_ context.Context, b *model.Branch) error {
	r.nextID++
	b.ID = r.nextID
	r.branches[b.ID] = b
	return nil
}

func (r *stubBranchRepo) ObtenerPorID(_ context.Context, id uint) (*model.Branch, error) {
	b, ok := r.branches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *stubBranchRepo) Listar(_ context.Context) ([]model.Branch, error) {
	out := make([]model.Branch, 0, len(r.branches))
	for _, b := range r.branches {
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBranchRepo) Actualizar(_ context.Context, b *model.Branch) error {
	if _, ok := r.branches[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *b
	r.branches[b.ID] = &cp
	return nil
}

func (r *stubBranchRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.branches, id)
	return nil
}

var _ repository.BranchRepository = (*stubBranchRepo)(nil)

// ── Seed helpers ──────────────────────────────────────────────────────────────

func seedUser(repo *stubUserRepo, email, role string) *model.User {
	u := &model.User{
		Name:           "Maria",
		Lastname:       "Quispe",
		DNI:            45678901,
		Phone:          987654321,
		Address:        "Av. Los Olivos 123",
		Email:          email,
		Password:       "$2a$12$fakehashfakehashfakehashfakehashfakehashfakehashfakeh",
		Affiliate:      "AFP",
		Insured:        "EsSalud",
		WorkModality:   "fullTime",
		EntryDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Retention:      "no",
		EntryToPayroll: "yes",
		Role:           role,
		State:          "active",
	}
	_ = repo.Crear(context.Background(), u)
	return u
}

func seedCustomer(repo *stubCustomerRepo, dni, email string) *model.Customer {
	c := &model.Customer{
		DNI:      dni,
		Name:     "Jose",
		LastName: "Flores",
		Birthday: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Email:    email,
		Phone:    "912345678",
		Address:  "Jr. Union 456",
		State:    "active",
	}
	_ = repo.Crear(context.Background(), c)
	return c
}

func seedProduct(repo *stubProductRepo, code string, categoryID uint) *model.Product {
	p := &model.Product{
		IDCategories:   categoryID,
		Code:           code,
		Name:           "Leche Gloria 400g",
		Description:    "Lata de leche evaporada",
		UnitPrice:      decimal.NewFromFloat(4.50),
		HigherPrice:    decimal.NewFromFloat(5.00),
		Stock:          120,
		ExpirationDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		State:          "active",
	}
	_ = repo.Crear(context.Background(), p)
	return p
}

func seedSale(repo *stubSaleRepo, customerID, userID uint, voucher string) *model.Sale {
	s := &model.Sale{
		IDCustomers:   customerID,
		IDUsers:       userID,
		VoucherNumber: voucher,
		IGV:           decimal.NewFromFloat(0.18),
		Total:         decimal.NewFromFloat(25.90),
		PaymentMethod: "cash",
		Voucher:       "ticket",
		DateTime:      time.Now(),
	}
	_ = repo.Crear(context.Background(), s)
	return s
}
