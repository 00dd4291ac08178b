package catalog

import "barbershop/models"

// defaultServices is the shop's published price list, plus one added entry:
// "consultation" is not on the published list and exists so a quote-only
// (price 0) service can be booked.
var defaultServices = []models.Service{
	{
		ID:          "haircut",
		Name:        models.LocalizedText{ES: "Corte y peinado", EN: "Haircut and styling"},
		Description: models.LocalizedText{ES: "Corte profesional personalizado según el estilo que buscas. Incluye lavado, secado y peinado final.", EN: "Professional cut tailored to the style you want. Includes wash, blow-dry and final styling."},
		Duration:    models.LocalizedText{ES: "45–60 min", EN: "45–60 min"},
		CTALabel:    models.LocalizedText{ES: "Reservar corte y peinado", EN: "Book haircut and styling"},
		Price:       euros(25),
		Image:       "https://images.pexels.com/photos/3992875/pexels-photo-3992875.jpeg?auto=compress&cs=tinysrgb&w=600",
	},
	{
		ID:          "dye",
		Name:        models.LocalizedText{ES: "Coloración completa", EN: "Full colour"},
		Description: models.LocalizedText{ES: "Tinte completo con asesoría personalizada y tratamiento de brillo.", EN: "Full dye with personal advice and a gloss treatment."},
		Duration:    models.LocalizedText{ES: "90–120 min", EN: "90–120 min"},
		CTALabel:    models.LocalizedText{ES: "Reservar coloración", EN: "Book colour"},
		Price:       euros(45),
		Image:       "https://images.pexels.com/photos/973401/pexels-photo-973401.jpeg",
	},
	{
		ID:          "highlights",
		Name:        models.LocalizedText{ES: "Mechas / Balayage", EN: "Highlights / Balayage"},
		Description: models.LocalizedText{ES: "Aclara tu cabello con efecto natural y degradado. Incluye matiz y styling.", EN: "Lighten your hair with a natural, graded effect. Includes toner and styling."},
		Duration:    models.LocalizedText{ES: "120–180 min", EN: "120–180 min"},
		CTALabel:    models.LocalizedText{ES: "Reservar mechas o balayage", EN: "Book highlights or balayage"},
		Price:       euros(85),
		Image:       "https://images.pexels.com/photos/3993461/pexels-photo-3993461.jpeg",
	},
	{
		ID:          "keratin",
		Name:        models.LocalizedText{ES: "Alisado de keratina", EN: "Keratin smoothing"},
		Description: models.LocalizedText{ES: "Tratamiento anti-frizz de larga duración que aporta suavidad y brillo.", EN: "Long-lasting anti-frizz treatment for softness and shine."},
		Duration:    models.LocalizedText{ES: "120–180 min", EN: "120–180 min"},
		CTALabel:    models.LocalizedText{ES: "Reservar alisado de keratina", EN: "Book keratin smoothing"},
		Price:       euros(120),
		Image:       "https://images.pexels.com/photos/3738349/pexels-photo-3738349.jpeg?auto=compress&cs=tinysrgb&w=600",
	},
	{
		ID:          "barber",
		Name:        models.LocalizedText{ES: "Corte masculino + barba", EN: "Men's cut + beard"},
		Description: models.LocalizedText{ES: "Corte moderno y arreglo de barba con navaja. Acabado con aceites.", EN: "Modern cut and straight-razor beard trim. Finished with oils."},
		Duration:    models.LocalizedText{ES: "30–50 min", EN: "30–50 min"},
		CTALabel:    models.LocalizedText{ES: "Reservar corte + barba", EN: "Book cut + beard"},
		Price:       euros(20),
		Image:       "https://images.pexels.com/photos/3998415/pexels-photo-3998415.jpeg",
	},
	{
		ID:          "extensions",
		Name:        models.LocalizedText{ES: "Extensiones", EN: "Extensions"},
		Description: models.LocalizedText{ES: "Extensiones naturales o sintéticas para volumen o longitud.", EN: "Natural or synthetic extensions for volume or length."},
		Duration:    models.LocalizedText{ES: "120–240 min", EN: "120–240 min"},
		CTALabel:    models.LocalizedText{ES: "Reservar extensiones", EN: "Book extensions"},
		Price:       euros(150),
		Image:       "https://images.pexels.com/photos/3993469/pexels-photo-3993469.jpeg",
	},
	// Added entry, not on the published price list.
	{
		ID:          "consultation",
		Name:        models.LocalizedText{ES: "Diagnóstico capilar", EN: "Hair consultation"},
		Description: models.LocalizedText{ES: "Valoramos el estado del cabello y te damos presupuesto en tienda.", EN: "We assess your hair and give you a quote in the shop."},
		Duration:    models.LocalizedText{ES: "15–20 min", EN: "15–20 min"},
		CTALabel:    models.LocalizedText{ES: "Pedir presupuesto", EN: "Ask for a quote"},
		Price:       euros(0),
		Image:       "https://images.pexels.com/photos/3993324/pexels-photo-3993324.jpeg",
	},
}

var defaultLocations = []models.Location{
	{
		ID:       "triana",
		Name:     models.LocalizedText{ES: "Sede Triana", EN: "Triana Location"},
		Address:  models.LocalizedText{ES: "Calle Mayor de Triana 45 • 35002 • Las Palmas de Gran Canaria", EN: "Calle Mayor de Triana 45 • 35002 • Las Palmas de Gran Canaria"},
		Schedule: models.LocalizedText{ES: "Lunes a viernes: 10:00–14:00 / 16:30–20:30\nSábados: 10:00–14:00", EN: "Mon–Fri: 10:00–14:00 / 16:30–20:30\nSaturday: 10:00–14:00"},
		Phone:    models.LocalizedText{ES: "Teléfono: +34 828 001 122", EN: "Phone: +34 828 001 122"},
		Note:     models.LocalizedText{ES: "En pleno corazón comercial de Triana.", EN: "Right in Triana's shopping area."},
	},
	{
		ID:       "mesa",
		Name:     models.LocalizedText{ES: "Sede Mesa y López", EN: "Mesa y López Location"},
		Address:  models.LocalizedText{ES: "Avenida José Mesa y López 82 • 35010 • Las Palmas de G.C.", EN: "Avenida José Mesa y López 82 • 35010 • Las Palmas de G.C."},
		Schedule: models.LocalizedText{ES: "Lunes a viernes: 9:30–14:00 / 17:00–21:00", EN: "Mon–Fri: 9:30–14:00 / 17:00–21:00"},
		Phone:    models.LocalizedText{ES: "Teléfono: +34 828 333 444", EN: "Phone: +34 828 333 444"},
		Note:     models.LocalizedText{ES: "Zona comercial por excelencia.", EN: "Prime shopping street."},
	},
	{
		ID:       "siete",
		Name:     models.LocalizedText{ES: "Sede Siete Palmas", EN: "Siete Palmas Location"},
		Address:  models.LocalizedText{ES: "Centro Comercial 7 Palmas • Planta 1 • 35012 • Las Palmas de G.C.", EN: "Centro Comercial 7 Palmas • Floor 1 • 35012 • Las Palmas de G.C."},
		Schedule: models.LocalizedText{ES: "Lunes a domingo: 10:00–22:00", EN: "Monday to Sunday: 10:00–22:00"},
		Phone:    models.LocalizedText{ES: "Teléfono: +34 828 555 666", EN: "Phone: +34 828 555 666"},
		Note:     models.LocalizedText{ES: "Perfecto para venir mientras haces compras.", EN: "Ideal while you shop or work out."},
	},
}

var aboutES = models.AboutCopy{
	Title:   "Sobre mí",
	Intro:   "¡Hola! Soy Adib Guardiola, fundador de esta BarberShop cerca de la playa de Las Canteras. Siempre he vivido entre el mar, el trato humano y el cuidado personal.",
	Middle:  "Con años de experiencia en peluquería y barbería, decidí crear un espacio donde se combinan técnica, calidad, ambiente relajado y atención cercana.",
	Closing: "Gracias por confiar en este proyecto. Será un placer verte en alguna de nuestras sedes.",
}

var aboutEN = models.AboutCopy{
	Title:   "About me",
	Intro:   "Hi! I'm Adib Guardiola, founder of this BarberShop near Las Canteras beach. I've always lived between the sea, people, and personal care.",
	Middle:  "After years in hairdressing and barbering, I created a space that mixes technique, quality, a relaxed vibe, and close attention.",
	Closing: "Thanks for trusting this project. I'd love to see you at any of our locations.",
}
