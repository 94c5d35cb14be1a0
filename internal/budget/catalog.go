package budget

// compositions is the built-in catalogue, a simplified SINAPI subset.
var compositions = map[string]Composition{
	"concreto_fck25": {
		Description: "Concreto FCK 25 MPa",
		Unit:        "m³",
		Materials: map[string]MaterialUsage{
			"cimento": {Quantity: 350, Unit: "kg"},
			"areia":   {Quantity: 0.55, Unit: "m³"},
			"brita":   {Quantity: 0.9, Unit: "m³"},
			"agua":    {Quantity: 180, Unit: "L"},
		},
		LaborHours:     4.5, // h/m³
		EquipmentHours: 1.2, // h/m³
	},
	"alvenaria_bloco": {
		Description: "Alvenaria com bloco cerâmico 14x19x39cm",
		Unit:        "m²",
		Materials: map[string]MaterialUsage{
			"bloco_ceramico": {Quantity: 13, Unit: "un"},
			"argamassa":      {Quantity: 0.012, Unit: "m³"},
			"aco_ca50":       {Quantity: 1.5, Unit: "kg"},
		},
		LaborHours: 0.8, // h/m²
	},
	"piso_ceramico": {
		Description: "Piso cerâmico 45x45cm",
		Unit:        "m²",
		Materials: map[string]MaterialUsage{
			"ceramica":       {Quantity: 1.05, Unit: "m²"},
			"argamassa_cola": {Quantity: 5, Unit: "kg"},
			"rejunte":        {Quantity: 0.5, Unit: "kg"},
		},
		LaborHours: 0.6, // h/m²
	},
}

// materialPrices holds base unit prices (R$) for catalogue materials.
var materialPrices = map[string]float64{
	"cimento":        0.85,  // R$/kg
	"areia":          65.0,  // R$/m³
	"brita":          80.0,  // R$/m³
	"agua":           0.005, // R$/L
	"bloco_ceramico": 1.25,  // R$/un
	"argamassa":      180.0, // R$/m³
	"aco_ca50":       6.80,  // R$/kg
	"ceramica":       45.0,  // R$/m²
	"argamassa_cola": 12.0,  // R$/kg
	"rejunte":        8.50,  // R$/kg
}
