package services

import "acsd/internal/models"

// DefaultActivities returns the built-in seed set: four sample activities,
// one in the past and one without an image. A fresh slice is built on every
// call so callers can never mutate the baseline.
func DefaultActivities() []models.Activity {
	return []models.Activity{
		{
			ID:          "1",
			Name:        "Fête de Quartier Annuelle",
			Date:        "2024-07-20",
			Time:        "14:00",
			Location:    "Parc Central, BelleVue-sur-Mer",
			Description: "Rejoignez-nous pour une journée de jeux, musique et convivialité. Stands de nourriture et animations pour tous les âges.",
			ImageURL:    "https://picsum.photos/seed/fete/600/400",
		},
		{
			ID:          "2",
			Name:        "Réunion Mensuelle des Membres",
			Date:        "2024-08-05",
			Time:        "19:00",
			Location:    "Salle Polyvalente, Mairie de BelleVue-sur-Mer",
			Description: "Discussion des projets en cours, planification des futurs événements et accueil des nouveaux membres.",
			ImageURL:    "https://picsum.photos/seed/reunion/600/400",
		},
		{
			ID:          "3",
			Name:        "Atelier Créatif : Peinture sur Soie",
			Date:        "2024-08-15",
			Time:        "10:00",
			Location:    "Espace Culturel L'Horizon",
			Description: "Découvrez les techniques de la peinture sur soie avec notre artiste locale. Matériel fourni. Places limitées.",
		},
		{
			ID:          "4",
			Name:        "Nettoyage de la Plage",
			Date:        "2023-09-10",
			Time:        "09:00",
			Location:    "Plage des Goélands",
			Description: "Action citoyenne pour préserver notre littoral. Gants et sacs fournis.",
			ImageURL:    "https://picsum.photos/seed/plage/600/400",
		},
	}
}

// DefaultHistoryPage returns the built-in document for the history page,
// deep-copied per call.
func DefaultHistoryPage() *models.EditablePageData {
	return &models.EditablePageData{
		PageTitle: "Notre Histoire",
		Sections: []models.PageSection{
			{
				ID:    "hist-origines",
				Title: "Les Origines",
				Contents: []models.PageContentItem{
					{
						ID:   "hist-origines-p1",
						Type: models.ContentParagraph,
						Text: "Fondée en 1987 par une poignée d'habitants passionnés, l'association de quartier de BelleVue-sur-Mer est née de l'envie de faire vivre notre littoral et de rapprocher ses habitants.",
					},
					{
						ID:       "hist-origines-img1",
						Type:     models.ContentImage,
						ImageURL: "https://picsum.photos/seed/histoire/800/500",
						ImageAlt: "Photographie ancienne du quartier de BelleVue-sur-Mer",
					},
				},
			},
			{
				ID:    "hist-aujourdhui",
				Title: "Aujourd'hui",
				Contents: []models.PageContentItem{
					{
						ID:   "hist-aujourdhui-p1",
						Type: models.ContentParagraph,
						Text: "Forte de plus de deux cents membres, l'association organise chaque année des fêtes de quartier, des ateliers créatifs et des actions citoyennes ouvertes à toutes et à tous.",
					},
				},
			},
		},
	}
}

// PlaceholderPage is the generic fallback for page keys that have neither
// stored content nor a built-in default.
func PlaceholderPage() *models.EditablePageData {
	return &models.EditablePageData{
		PageTitle: "Page non trouvée",
		Sections:  []models.PageSection{},
	}
}
