package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Product queries.
const (
	queryGetProduct = baseProductsSelect + `
		WHERE p.id = $1`

	queryFindProductByPermalink = `SELECT id FROM products WHERE permalink = $1`

	queryProductExists = `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`

	queryInsertProduct = `
		INSERT INTO products (
			id, title, price, currency_id, thumbnail, condition,
			available_quantity, sold_quantity, seller_nickname, permalink,
			category_id, brand_id, created_at, updated_at
		) VALUES (
			@id, @title, @price, @currency_id, @thumbnail, @condition,
			@available_quantity, @sold_quantity, @seller_nickname, @permalink,
			@category_id, @brand_id, now(), now()
		)`

	queryInsertPicture = `
		INSERT INTO pictures (product_id, url, position)
		VALUES ($1, $2, $3)`

	queryListPicturesForProducts = `
		SELECT product_id, id, url, position
		FROM pictures
		WHERE product_id = ANY($1)
		ORDER BY product_id, position`

	queryUpdateProduct = `
		UPDATE products SET
			title              = COALESCE(@title, title),
			price              = COALESCE(@price, price),
			currency_id        = COALESCE(@currency_id, currency_id),
			thumbnail          = COALESCE(@thumbnail, thumbnail),
			condition          = COALESCE(@condition, condition),
			available_quantity = COALESCE(@available_quantity, available_quantity),
			seller_nickname    = COALESCE(@seller_nickname, seller_nickname),
			permalink          = COALESCE(@permalink, permalink),
			category_id        = CASE WHEN @set_category THEN NULLIF(@category_id, '') ELSE category_id END,
			brand_id           = CASE WHEN @set_brand THEN NULLIF(@brand_id, '') ELSE brand_id END,
			updated_at         = now()
		WHERE id = @id`

	queryDeleteProduct = `DELETE FROM products WHERE id = $1`
)

// Category queries.
const (
	queryListCategories = `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name ASC`

	queryCreateCategory = `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id`

	queryUpdateCategory = `
		UPDATE categories c SET name = $2
		WHERE c.id = $1
		RETURNING (SELECT COUNT(*) FROM products p WHERE p.category_id = c.id)`

	queryDeleteCategory = `DELETE FROM categories WHERE id = $1`
)

// Brand queries.
const (
	queryListBrands = `
		SELECT b.id, b.name, b.slug, b.logo, COUNT(p.id)
		FROM brands b
		LEFT JOIN products p ON p.brand_id = b.id
		GROUP BY b.id, b.name, b.slug, b.logo
		ORDER BY b.name ASC`

	queryCreateBrand = `
		INSERT INTO brands (name, slug, logo)
		VALUES (@name, @slug, @logo)
		RETURNING id`

	queryUpdateBrand = `
		UPDATE brands b SET name = @name, slug = @slug, logo = @logo
		WHERE b.id = @id
		RETURNING (SELECT COUNT(*) FROM products p WHERE p.brand_id = b.id)`

	queryDeleteBrand = `DELETE FROM brands WHERE id = $1`
)

// Partner queries.
const (
	queryListPartners = `
		SELECT id, name, image_url, created_at
		FROM partners
		ORDER BY created_at ASC, id ASC`

	queryCreatePartner = `
		INSERT INTO partners (name, image_url)
		VALUES ($1, $2)
		RETURNING id, created_at`

	queryDeletePartner = `DELETE FROM partners WHERE id = $1`
)

// System setting queries.
const (
	queryGetSetting = `SELECT value FROM system_settings WHERE key = $1`

	queryUpsertSetting = `
		INSERT INTO system_settings (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now()`
)
