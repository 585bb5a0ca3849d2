package catalog

import "liana/models"

// products is the Lian-Ana catalog. It is read-only reference data;
// the store has no admin write path.
var products = []models.Product{
	{
		ID:          "1",
		Name:        "40 Stems Lush Red Roses",
		Price:       276000,
		Category:    "roses",
		Image:       "/static/products/roses-40.jpg",
		Description: "Luxurious bouquet of 40 fresh, premium red roses perfectly arranged",
	},
	{
		ID:          "2",
		Name:        "30 Stems Red Roses",
		Price:       241500,
		Category:    "roses",
		Image:       "/static/products/roses-30.jpg",
		Description: "Beautiful arrangement of 30 fresh red roses",
	},
	{
		ID:          "3",
		Name:        "25 Stem Red Roses",
		Price:       175000,
		Category:    "roses",
		Image:       "/static/products/roses-25.jpg",
		Description: "Classic bouquet of 25 stunning red roses",
	},
	{
		ID:          "4",
		Name:        "100 Stem Red Roses",
		Price:       700000,
		Category:    "roses",
		Image:       "/static/products/roses-100.jpg",
		Description: "Grand arrangement of 100 premium red roses for special occasions",
		Featured:    true,
	},
	{
		ID:          "5",
		Name:        "6 Stem Red Roses",
		Price:       45000,
		Category:    "roses",
		Image:       "/static/products/roses-6.jpg",
		Description: "Perfect small bouquet of 6 red roses",
	},
	{
		ID:          "6",
		Name:        "10 Stem Red Roses",
		Price:       70000,
		Category:    "roses",
		Image:       "/static/products/roses-10.jpg",
		Description: "Elegant 10 red roses arrangement",
	},
	{
		ID:          "7",
		Name:        "Red Rose Box",
		Price:       182500,
		Category:    "boxes",
		Image:       "/static/products/rose-box-1.jpg",
		Description: "Luxurious red roses in an elegant box",
	},
	{
		ID:          "8",
		Name:        "Red Rose Box 2",
		Price:       217000,
		Category:    "boxes",
		Image:       "/static/products/rose-box-2.jpg",
		Description: "Premium red rose box arrangement",
	},
	{
		ID:          "9",
		Name:        "Heartshape Box",
		Price:       188000,
		Category:    "boxes",
		Image:       "/static/products/heart-box.jpg",
		Description: "Romantic heart-shaped box filled with fresh roses",
		Featured:    true,
	},
	{
		ID:          "10",
		Name:        "30 Mixed Rose Bouquet",
		Price:       215000,
		Category:    "mixed",
		Image:       "/static/products/mixed-30.jpg",
		Description: "Beautiful mix of 30 colorful roses",
	},
	{
		ID:          "11",
		Name:        "Colorful Mixed Rose Bouquet",
		Price:       355000,
		Category:    "mixed",
		Image:       "/static/products/mixed-colorful.jpg",
		Description: "Vibrant collection of mixed color roses",
		Featured:    true,
	},
	{
		ID:          "12",
		Name:        "Mixed Standard Bouquet",
		Price:       190000,
		Category:    "mixed",
		Image:       "/static/products/mixed-standard.jpg",
		Description: "Standard mixed flower arrangement",
	},
	{
		ID:          "13",
		Name:        "Mixed Box Flower Arrangement",
		Price:       185000,
		Category:    "boxes",
		Image:       "/static/products/mixed-box.jpg",
		Description: "Mixed flowers beautifully arranged in a box",
	},
	{
		ID:          "14",
		Name:        "Pink Roses and Baby's Breath Mix",
		Price:       170500,
		Category:    "mixed",
		Image:       "/static/products/pink-baby-breath.jpg",
		Description: "Delicate pink roses with baby's breath",
	},
	{
		ID:          "15",
		Name:        "20 Roses as Baby's Breath",
		Price:       179500,
		Category:    "mixed",
		Image:       "/static/products/roses-20-baby.jpg",
		Description: "20 roses paired with soft baby's breath",
	},
	{
		ID:          "16",
		Name:        "Elegant Lush Red Rose",
		Price:       74000,
		Category:    "roses",
		Image:       "/static/products/elegant-lush.jpg",
		Description: "Elegant red rose arrangement",
	},
	{
		ID:          "17",
		Name:        "Elegant Mini Bouquet",
		Price:       45000,
		Category:    "mixed",
		Image:       "/static/products/mini-mixed.jpg",
		Description: "Charming mini mixed bouquet",
	},
	{
		ID:          "18",
		Name:        "Elegant Mixed Bouquet of Flowers",
		Price:       150000,
		Category:    "mixed",
		Image:       "/static/products/elegant-mixed-bouquet.jpg",
		Description: "Sophisticated mixed flower bouquet",
	},
	{
		ID:          "19",
		Name:        "Elegant Lush Mini Red Roses",
		Price:       69000,
		Category:    "roses",
		Image:       "/static/products/mini-red.jpg",
		Description: "Lush mini red rose arrangement",
	},
	{
		ID:          "20",
		Name:        "Elegant Dozen Mixed Roses",
		Price:       89000,
		Category:    "mixed",
		Image:       "/static/products/dozen-mixed.jpg",
		Description: "A dozen mixed roses elegantly arranged",
	},
	{
		ID:          "21",
		Name:        "Elegant Mini Red Roses",
		Price:       50000,
		Category:    "roses",
		Image:       "/static/products/mini-red-roses.jpg",
		Description: "Cute mini red roses bouquet",
	},
	{
		ID:          "22",
		Name:        "Luxury Mini Red Rose",
		Price:       85000,
		Category:    "roses",
		Image:       "/static/products/luxury-mini.jpg",
		Description: "Luxury mini red rose arrangement",
	},
	{
		ID:          "23",
		Name:        "Ferrero Rocher Chocolate Cakes",
		Price:       20000,
		Category:    "extras",
		Image:       "/static/products/ferrero-rocher.jpg",
		Description: "Delicious Ferrero Rocher chocolate cakes",
	},
	{
		ID:          "24",
		Name:        "Gold Champagne",
		Price:       14000,
		Category:    "extras",
		Note:        "per bottle",
		Image:       "/static/products/champagne.jpg",
		Description: "Premium gold champagne to celebrate",
	},
	{
		ID:          "25",
		Name:        "Elegant Mixed Box of Rose with Balloon",
		Price:       202000,
		Category:    "boxes",
		Image:       "/static/products/mixed-box-balloon.jpg",
		Description: "Mixed roses in elegant box with balloon",
	},
	{
		ID:            "26",
		Name:          "Elegant Luxury Combo 100, 50 and 25 Stems",
		Price:         1132000,
		OriginalPrice: 1232000,
		Category:      "roses",
		Sale:          true,
		Image:         "/static/products/luxury-combo.jpg",
		Description:   "Ultimate luxury combo with 100, 50, and 25 stem arrangements",
		Featured:      true,
	},
	{
		ID:          "27",
		Name:        "Luxury Latina Wine",
		Price:       18500,
		Category:    "extras",
		Image:       "/static/products/wine.jpg",
		Description: "Fine Luxury Latina wine",
	},
	{
		ID:          "28",
		Name:        "Special Mini Cakes",
		Price:       3500,
		Category:    "extras",
		Image:       "/static/products/special-cakes.jpg",
		Description: "Special mini cakes for celebrations",
	},
	{
		ID:          "29",
		Name:        "Luxury Mini Cakes",
		Price:       3000,
		Category:    "extras",
		Image:       "/static/products/luxury-cakes.jpg",
		Description: "Luxury mini cakes",
	},
	{
		ID:          "30",
		Name:        "50 Mixed Pink Rose Bouquet",
		Price:       335000,
		Category:    "mixed",
		Image:       "/static/products/pink-mixed-50.jpg",
		Description: "Stunning bouquet of 50 mixed pink roses",
	},
}
