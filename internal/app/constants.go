package app

// MinResponsesPerGroup is the smallest membership an explicitly created group may have.
const MinResponsesPerGroup = 2

// cardSpacing is the vertical gap between freshly placed cards.
const cardSpacing = 16
