package store

import "github.com/sciencekitconnect/storefront/internal/models"

// SeedCategories returns the category records the store is seeded with, without
// ids. Exported so the seed CLI command can validate them.
func SeedCategories() []models.Category {
	return []models.Category{
		{
			Name:         "Chemistry Sets",
			Description:  "Complete chemistry experiment kits with safety equipment",
			ImageURL:     "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ProductCount: 18,
		},
		{
			Name:         "Robotics Kits",
			Description:  "Build and program robots with advanced sensors",
			ImageURL:     "https://images.unsplash.com/photo-1555255707-c07966088b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ProductCount: 15,
		},
		{
			Name:         "Arduino Projects",
			Description:  "Electronics and programming experiments",
			ImageURL:     "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ProductCount: 25,
		},
		{
			Name:         "Lab Manuals",
			Description:  "Educational guides and digital resources",
			ImageURL:     "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ProductCount: 27,
		},
	}
}

// SeedProducts returns the product records the store is seeded with, without
// ids.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			Name:        "Advanced Chemistry Explorer Kit",
			Description: "50+ experiments covering acids, bases, crystallization, and chemical reactions. Includes safety equipment and detailed manual.",
			Price:       "10799.00",
			Category:    "Chemistry Sets",
			Subcategory: "Advanced",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"experiments":     50,
				"safetyEquipment": true,
				"manual":          "200-page illustrated guide",
				"chemicals":       "15 safe chemicals included",
			},
			SafetyInfo: "Adult supervision required. Safety goggles and gloves included.",
			InStock:    25,
			Featured:   true,
		},
		{
			Name:        "Smart Robotics Starter Kit",
			Description: "Build and program your own robot with sensors, motors, and visual programming interface. Perfect for beginners.",
			Price:       "15799.00",
			Category:    "Robotics Kits",
			Subcategory: "Beginner",
			AgeGroup:    "Middle School (12-14)",
			ImageURL:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"sensors":      "Ultrasonic, light, sound sensors",
				"motors":       "2 servo motors included",
				"programming":  "Visual block-based programming",
				"connectivity": "Bluetooth enabled",
			},
			SafetyInfo: "Small parts - not suitable for children under 12.",
			InStock:    18,
			Featured:   true,
		},
		{
			Name:        "Arduino Innovation Lab",
			Description: "Complete Arduino ecosystem with sensors, LEDs, motors, and step-by-step project guides for 25+ experiments.",
			Price:       "8299.00",
			Category:    "Arduino Projects",
			Subcategory: "Complete Kit",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"board":      "Arduino Uno R3 compatible",
				"components": "200+ electronic components",
				"projects":   "25 guided projects",
				"software":   "Arduino IDE compatible",
			},
			SafetyInfo: "Basic electronics safety knowledge recommended.",
			InStock:    32,
			Featured:   true,
		},
		{
			Name:        "Digital Microscope Kit",
			Description: "400x magnification with USB connectivity for digital viewing and photography.",
			Price:       "6649.00",
			Category:    "Lab Equipment",
			Subcategory: "Microscopy",
			AgeGroup:    "Middle School (12-14)",
			ImageURL:    "https://images.unsplash.com/photo-1576086213369-97a306d36557?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"magnification": "40x to 400x",
				"connectivity":  "USB 2.0",
				"software":      "Windows and Mac compatible",
				"specimens":     "Prepared slides included",
			},
			SafetyInfo: "Handle glass slides with care.",
			InStock:    15,
		},
		{
			Name:        "Solar Energy Lab Kit",
			Description: "Learn renewable energy with solar panels, batteries, and measurement tools.",
			Price:       "12139.00",
			Category:    "Physics Kits",
			Subcategory: "Energy",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1509391366360-2e959784a276?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"solarPanel":  "6V 2W solar panel",
				"battery":     "Rechargeable NiMH battery",
				"multimeter":  "Digital multimeter included",
				"experiments": "15 energy experiments",
			},
			SafetyInfo: "Do not stare directly at LED lights.",
			InStock:    22,
		},
		{
			Name:        "Electronics Breadboard Kit",
			Description: "Complete circuit building kit with resistors, LEDs, and components.",
			Price:       "4989.00",
			Category:    "Arduino Projects",
			Subcategory: "Components",
			AgeGroup:    "Middle School (12-14)",
			ImageURL:    "https://images.unsplash.com/photo-1517420704952-d9f39e95b43e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"breadboard": "830 tie-points",
				"resistors":  "Assorted values 1/4W",
				"leds":       "Various colors and sizes",
				"wires":      "Jumper wire assortment",
			},
			SafetyInfo: "Low voltage components - safe for educational use.",
			InStock:    45,
		},
		{
			Name:        "Organic Chemistry Lab Set",
			Description: "Explore organic compounds with safe household chemicals and advanced molecular models.",
			Price:       "9399.00",
			Category:    "Chemistry Sets",
			Subcategory: "Organic",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"experiments":     35,
				"molecularModels": "3D molecular modeling kit",
				"chemicals":       "12 organic compounds",
				"manual":          "150-page detailed guide",
			},
			SafetyInfo: "Adult supervision required. Well-ventilated area recommended.",
			InStock:    20,
		},
		{
			Name:        "Crystal Growing Science Kit",
			Description: "Grow beautiful crystals while learning about crystallization and mineral formation.",
			Price:       "3759.00",
			Category:    "Chemistry Sets",
			Subcategory: "Crystallography",
			AgeGroup:    "Elementary (8-11)",
			ImageURL:    "https://images.unsplash.com/photo-1532094349884-543bc11b234d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"crystalTypes":    "Salt, sugar, epsom, and colored crystals",
				"growthTime":      "3-14 days depending on crystal",
				"magnifyingGlass": "Included for observation",
				"specimens":       "Display containers included",
			},
			SafetyInfo: "Non-toxic materials. Adult supervision recommended.",
			InStock:    38,
		},
		{
			Name:        "Advanced Humanoid Robot Kit",
			Description: "Build a walking, talking robot with AI capabilities and smartphone control.",
			Price:       "24799.00",
			Category:    "Robotics Kits",
			Subcategory: "Advanced",
			AgeGroup:    "College (18+)",
			ImageURL:    "https://images.unsplash.com/photo-1555255707-c07966088b7b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"sensors":      "Gyroscope, accelerometer, camera",
				"motors":       "18 servo motors for movement",
				"programming":  "Python and C++ compatible",
				"connectivity": "WiFi and Bluetooth",
				"ai":           "Voice recognition and response",
			},
			SafetyInfo: "Complex assembly required. 16+ years recommended.",
			InStock:    8,
			Featured:   true,
		},
		{
			Name:        "Drone Building Workshop Kit",
			Description: "Assemble and program your own quadcopter drone with flight control systems.",
			Price:       "18999.00",
			Category:    "Robotics Kits",
			Subcategory: "Aerial",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"flightTime":  "15 minutes per charge",
				"camera":      "HD 720p camera included",
				"range":       "100m control range",
				"programming": "Block-based flight programming",
				"safety":      "Propeller guards included",
			},
			SafetyInfo: "Outdoor use recommended. Follow local drone regulations.",
			InStock:    12,
		},
		{
			Name:        "IoT Home Automation Kit",
			Description: "Connect and control household devices using Arduino and smartphone integration.",
			Price:       "11799.00",
			Category:    "Arduino Projects",
			Subcategory: "IoT",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"microcontroller": "ESP32 with WiFi",
				"sensors":         "Temperature, humidity, motion, light",
				"relays":          "4-channel relay module",
				"app":             "Custom smartphone app included",
				"protocols":       "WiFi, MQTT, HTTP",
			},
			SafetyInfo: "Electrical connections require adult supervision.",
			InStock:    25,
		},
		{
			Name:        "LED Matrix Display Kit",
			Description: "Create scrolling text, animations, and games on programmable LED displays.",
			Price:       "6299.00",
			Category:    "Arduino Projects",
			Subcategory: "Display",
			AgeGroup:    "Middle School (12-14)",
			ImageURL:    "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"matrix":     "32x32 RGB LED matrix",
				"controller": "Arduino compatible controller",
				"projects":   "15 example projects",
				"software":   "Visual programming interface",
			},
			SafetyInfo: "Bright LEDs - avoid direct eye exposure.",
			InStock:    30,
		},
		{
			Name:        "Renewable Energy Experiment Lab",
			Description: "Comprehensive manual covering solar, wind, and hydroelectric energy experiments.",
			Price:       "2899.00",
			Category:    "Lab Manuals",
			Subcategory: "Energy",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"pages":         "280 pages full color",
				"experiments":   "45 hands-on experiments",
				"digitalAccess": "Online videos and simulations",
				"materials":     "Component list for each experiment",
			},
			SafetyInfo: "Educational content only - equipment sold separately.",
			InStock:    50,
		},
		{
			Name:        "Advanced Physics Lab Manual",
			Description: "University-level physics experiments covering mechanics, waves, and modern physics.",
			Price:       "4299.00",
			Category:    "Lab Manuals",
			Subcategory: "Physics",
			AgeGroup:    "College (18+)",
			ImageURL:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"pages":        "450 pages with diagrams",
				"experiments":  "65 laboratory experiments",
				"theory":       "Comprehensive theoretical background",
				"calculations": "Step-by-step problem solving",
			},
			SafetyInfo: "Suitable for advanced students and educators.",
			InStock:    35,
		},
		{
			Name:        "Weather Station Building Kit",
			Description: "Build your own digital weather station with multiple sensors and data logging.",
			Price:       "13999.00",
			Category:    "Arduino Projects",
			Subcategory: "Environmental",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"sensors":  "Temperature, humidity, pressure, wind speed",
				"display":  "LCD display with real-time data",
				"logging":  "SD card data storage",
				"wireless": "WiFi weather data transmission",
				"power":    "Solar powered option included",
			},
			SafetyInfo: "Outdoor installation requires weatherproofing.",
			InStock:    18,
			Featured:   true,
		},
		{
			Name:        "Microbiology Lab Starter Kit",
			Description: "Explore the microscopic world with prepared slides, cultures, and staining materials.",
			Price:       "8799.00",
			Category:    "Chemistry Sets",
			Subcategory: "Biology",
			AgeGroup:    "High School (15-18)",
			ImageURL:    "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"slides":      "25 prepared microscope slides",
				"cultures":    "Safe bacterial culture samples",
				"stains":      "Methylene blue and iodine stains",
				"petriDishes": "Sterile petri dishes included",
				"manual":      "Microbiology experiment guide",
			},
			SafetyInfo: "Sterile technique instructions included. Adult supervision required.",
			InStock:    22,
		},
		{
			Name:        "Solar Robot Building Challenge",
			Description: "Multiple solar-powered robot designs that teach renewable energy and mechanics.",
			Price:       "7899.00",
			Category:    "Robotics Kits",
			Subcategory: "Solar",
			AgeGroup:    "Middle School (12-14)",
			ImageURL:    "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			Specifications: map[string]any{
				"robots":      "6 different robot configurations",
				"solarPanel":  "Small photovoltaic cell",
				"gears":       "Gear reduction system",
				"assembly":    "No tools required",
				"educational": "Solar energy learning guide",
			},
			SafetyInfo: "Small parts present. Recommended for ages 10+.",
			InStock:    28,
		},
	}
}
