package extras

// Template is a named MEP/SOP step list selectable from the job detail
// screen.
type Template struct {
	Name  string
	Steps []string
}

// Templates returns the built-in checklist templates in menu order.
func Templates() []Template {
	return []Template{
		{
			Name: "Setzarbeiten (MEP + SOP)",
			Steps: []string{
				"MEP: Weg & Station prüfen",
				"MEP: GN-Bleche bereitstellen",
				"MEP: Etiketten / Stift / Klebeband",
				"MEP: Handschuhe / Tücher / Reiniger",
				"SOP: Ware holen (Menge + Charge prüfen)",
				"SOP: Bleche belegen (Raster/Abstände Standard)",
				"SOP: Beschriften (Datum/Uhrzeit/Allergene/Charge)",
				"SOP: In Kühlung zurück (Ziel + Stellplatz)",
				"SOP: Übergabe markieren",
				"SOP: Foto (optional)",
			},
		},
		{
			Name: "Spätzle Kantine (MEP + SOP)",
			Steps: []string{
				"MEP: Pfanne/Kipper + Fett/Butter bereitstellen",
				"MEP: GN 1/1 6,5 cm bereitstellen",
				"MEP: Transportwagen prüfen",
				"SOP: Spätzle leicht in Butter anbraten",
				"SOP: Auf GN füllen (ca. 5 cm hoch)",
				"SOP: Temperatur prüfen / dokumentieren",
				"SOP: In Kantine bringen / Übergabe",
			},
		},
		{
			Name: "Bulgur (Rezept-Workflow)",
			Steps: []string{
				"MEP: Zutaten abwiegen (Wasser, Salz, Chili, Koriander, Kreuzkümmel, Brühe)",
				"SOP: Wasser aufsetzen / würzen",
				"SOP: Bulgur einrühren",
				"SOP: 12 Minuten dämpfen",
				"SOP: Anschließend auflockern (!!)",
				"SOP: Gewicht prüfen / Portionieren",
				"SOP: Beschriften / Datum / Charge",
			},
		},
		{
			Name: "Buffet: Frankfurter/Wurst",
			Steps: []string{
				"MEP: Partybrötchen bereitstellen",
				"MEP: Senf & Ketchup bereitstellen",
				"SOP: Frankfurter Würstchen vorbereiten",
				"SOP: Warmhalten nach Standard",
				"SOP: Transport / Übergabe",
			},
		},
	}
}
