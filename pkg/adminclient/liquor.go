package adminclient

import "w3liquor_backend/internal/models"

// Liquor est l'enregistrement produit tel que le backend le sert. Alias du
// modèle serveur, exporté ici pour que les importeurs du client puissent
// nommer le type malgré le cloisonnement internal/.
type Liquor = models.Liquor
